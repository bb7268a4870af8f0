// Package ndarray provides typed, strided views over numeric buffers.
//
// An Array pairs a borrowed buffer with an element kind, a shape and element
// strides. Row-major (C) and column-major (F) arrays get their strides from the
// shape; arbitrary strides describe views into larger buffers, such as a gonum
// sub-matrix. Arrays never copy the buffer they are built from.
//
// View[T] is the stride-aware accessor used by kernels. It exposes elements in
// logical row-major order regardless of the underlying layout, with fast paths
// for contiguous buffers:
//
//	x, _ := ndarray.FromRows([][]float64{{1, 2}, {3, 4}}, ndarray.ColMajor)
//	v, _ := ndarray.ViewOf[float64](x)
//	v.At(1) // 2, the element at row 0, column 1
package ndarray
