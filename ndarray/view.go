package ndarray

import "fmt"

// View is the typed, stride-aware accessor over an Array. Flat indices passed
// to and returned from a View are logical row-major positions, whatever the
// memory layout.
//
// A View shares the Array's buffer. Writing through a View of an input array
// is a contract violation for kernels.
type View[T Element] struct {
	data    []T
	shape   Shape
	strides []int
	offset  int
	n       int
	rowMaj  bool
	colMaj  bool
}

// ViewOf returns the typed view of a. It fails when T does not match a's kind.
func ViewOf[T Element](a *Array) (View[T], error) {
	data, ok := a.data.([]T)
	if !ok {
		return View[T]{}, fmt.Errorf("%w: array holds %s, view wants %s", ErrKind, a.kind, KindOf[T]())
	}
	return View[T]{
		data:    data,
		shape:   a.shape,
		strides: a.strides,
		offset:  a.offset,
		n:       a.shape.NumElements(),
		rowMaj:  contiguous(a.shape, a.strides, RowMajor),
		colMaj:  contiguous(a.shape, a.strides, ColMajor),
	}, nil
}

// Len returns the number of logical elements.
func (v View[T]) Len() int { return v.n }

// Shape returns a copy of the logical shape.
func (v View[T]) Shape() Shape { return v.shape.Clone() }

// Contiguous returns the elements as one row-major slice when the buffer
// already holds them that way. The slice aliases the buffer.
func (v View[T]) Contiguous() ([]T, bool) {
	if !v.rowMaj {
		return nil, false
	}
	return v.data[v.offset : v.offset+v.n], true
}

// offsetOf maps a logical row-major flat index to a buffer index.
func (v View[T]) offsetOf(flat int) int {
	if v.rowMaj {
		return v.offset + flat
	}
	off := v.offset
	for d := len(v.shape) - 1; d >= 0; d-- {
		ext := v.shape[d]
		off += (flat % ext) * v.strides[d]
		flat /= ext
	}
	return off
}

// At returns the element at logical row-major position flat.
func (v View[T]) At(flat int) T {
	return v.data[v.offsetOf(flat)]
}

// Set stores x at logical row-major position flat.
func (v View[T]) Set(flat int, x T) {
	v.data[v.offsetOf(flat)] = x
}

// Index returns the element at the multi-dimensional index idx.
func (v View[T]) Index(idx ...int) T {
	if len(idx) != len(v.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d", len(idx), len(v.shape)))
	}
	off := v.offset
	for d, i := range idx {
		if i < 0 || i >= v.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with extent %d", i, d, v.shape[d]))
		}
		off += i * v.strides[d]
	}
	return v.data[off]
}

// forRows calls fn once per run along the last axis, in logical order, with the
// logical index of the run's first element and its buffer offset.
func (v View[T]) forRows(fn func(start, base int)) {
	if v.n == 0 {
		return
	}
	rank := len(v.shape)
	inner := v.shape[rank-1]
	outer := v.n / inner
	idx := make([]int, rank-1)
	base := v.offset
	for r := 0; r < outer; r++ {
		fn(r*inner, base)
		for d := rank - 2; d >= 0; d-- {
			idx[d]++
			base += v.strides[d]
			if idx[d] < v.shape[d] {
				break
			}
			base -= v.strides[d] * v.shape[d]
			idx[d] = 0
		}
	}
}

// Each calls fn for every element in logical row-major order.
func (v View[T]) Each(fn func(i int, x T)) {
	if s, ok := v.Contiguous(); ok {
		for i, x := range s {
			fn(i, x)
		}
		return
	}
	rank := len(v.shape)
	inner, step := v.shape[rank-1], v.strides[rank-1]
	v.forRows(func(start, base int) {
		for j := 0; j < inner; j++ {
			fn(start+j, v.data[base+j*step])
		}
	})
}

// Pack gathers the elements into dst in logical row-major order and returns
// the number written. dst must hold at least Len elements.
func (v View[T]) Pack(dst []T) int {
	if len(dst) < v.n {
		panic(fmt.Sprintf("ndarray: Pack destination holds %d, need %d", len(dst), v.n))
	}
	if s, ok := v.Contiguous(); ok {
		return copy(dst, s)
	}
	if v.colMaj && len(v.shape) == 2 {
		rows, cols := v.shape[0], v.shape[1]
		src := v.data[v.offset : v.offset+v.n]
		for j := 0; j < cols; j++ {
			col := src[j*rows : (j+1)*rows]
			for i, x := range col {
				dst[i*cols+j] = x
			}
		}
		return v.n
	}
	rank := len(v.shape)
	inner, step := v.shape[rank-1], v.strides[rank-1]
	v.forRows(func(start, base int) {
		row := dst[start : start+inner]
		for j := range row {
			row[j] = v.data[base+j*step]
		}
	})
	return v.n
}

// Unpack scatters src, given in logical row-major order, into the view.
func (v View[T]) Unpack(src []T) {
	if len(src) < v.n {
		panic(fmt.Sprintf("ndarray: Unpack source holds %d, need %d", len(src), v.n))
	}
	if s, ok := v.Contiguous(); ok {
		copy(s, src)
		return
	}
	if v.colMaj && len(v.shape) == 2 {
		rows, cols := v.shape[0], v.shape[1]
		dst := v.data[v.offset : v.offset+v.n]
		for j := 0; j < cols; j++ {
			col := dst[j*rows : (j+1)*rows]
			for i := range col {
				col[i] = src[i*cols+j]
			}
		}
		return
	}
	rank := len(v.shape)
	inner, step := v.shape[rank-1], v.strides[rank-1]
	v.forRows(func(start, base int) {
		row := src[start : start+inner]
		for j, x := range row {
			v.data[base+j*step] = x
		}
	})
}

// Fill sets every element to x.
func (v View[T]) Fill(x T) {
	if s, ok := v.Contiguous(); ok {
		for i := range s {
			s[i] = x
		}
		return
	}
	rank := len(v.shape)
	inner, step := v.shape[rank-1], v.strides[rank-1]
	v.forRows(func(_, base int) {
		for j := 0; j < inner; j++ {
			v.data[base+j*step] = x
		}
	})
}
