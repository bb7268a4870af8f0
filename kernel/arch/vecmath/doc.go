// Package vecmath provides float64 kernel variants backed by
// github.com/cwbudde/algo-vecmath, which selects AVX2 or NEON code at runtime.
//
// algo-vecmath works on contiguous []float64 slices, so views that are not
// C-contiguous are first packed into pooled scratch in logical row-major order.
// Results therefore do not depend on the input layout, but may differ from the
// generic variants in the last bits because SIMD reductions reassociate.
package vecmath
