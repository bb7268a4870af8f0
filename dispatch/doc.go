// Package dispatch implements the typed multi-array dispatcher.
//
// Compute takes two value arrays (float32 or float64) and two index arrays
// (int32 or int64) of one shape, validates them, picks the kernel variant for
// their element kinds and returns freshly allocated results:
//
//	res, err := dispatch.Compute(x1, x2, i1, i2, dispatch.WithTag("f64_i32"))
//
// The value result has the value kind and the index result the index kind.
// Memory layout (C, F or strided) never changes which kernel runs; kernels see
// stride-aware views, so C and F inputs with the same logical contents give
// bitwise identical results.
//
// Validation happens in a fixed order and stops at the first failure: array
// presence, shapes, element kinds, layouts, tag, kernel, allocation. Every
// error is a *Error that matches one of the package sentinels with errors.Is.
package dispatch
