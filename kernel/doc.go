// Package kernel defines the contract between the dispatcher and the
// computational kernels, and the registry that selects among kernel variants.
//
// A kernel is identified by name ("sum", "add", ...). Each name may have
// several variants (generic, vecmath, fft) registered by the packages under
// kernel/arch from their init() functions. At dispatch time the registry
// picks the highest-priority variant that implements the requested type pair
// and whose SIMD level the CPU supports.
//
// Kernels never see memory layout as a type parameter. They receive
// stride-aware ndarray.View values and must produce results that depend only
// on the logical element order, so C, F and strided inputs give bitwise
// identical outputs for a given variant.
package kernel
