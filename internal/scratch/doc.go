// Package scratch provides pooled, typed scratch slices for kernels that need
// to gather strided inputs into contiguous memory before calling a vectorised
// routine. Slices are returned with Put once the kernel finishes; a kernel
// never hands a scratch slice to its caller.
package scratch
