package kernel

import (
	"github.com/cwbudde/algo-dispatch/internal/scratch"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Number is the set of element types kernels compute on.
type Number interface {
	float32 | float64 | int32 | int64
}

func noop() {}

// Rows returns the elements of v in logical row-major order. A C-contiguous
// view is returned as is; any other view is gathered into pooled scratch,
// which release gives back. The slice must not be written.
func Rows[T Number](v ndarray.View[T]) (data []T, release func()) {
	if s, ok := v.Contiguous(); ok {
		return s, noop
	}
	pool := scratch.For[T]()
	buf := pool.Get(v.Len())
	v.Pack(buf.Slice())
	return buf.Slice(), func() { pool.Put(buf) }
}

// Writable returns a row-major slice whose contents end up in v once commit is
// called. The slice contents are unspecified until written.
func Writable[T Number](v ndarray.View[T]) (data []T, commit func()) {
	if s, ok := v.Contiguous(); ok {
		return s, noop
	}
	pool := scratch.For[T]()
	buf := pool.Get(v.Len())
	return buf.Slice(), func() {
		v.Unpack(buf.Slice())
		pool.Put(buf)
	}
}

// Accumulate returns the sum of v's elements added in logical row-major
// order. Integer sums wrap on overflow.
func Accumulate[T Number](v ndarray.View[T]) T {
	var s T
	v.Each(func(_ int, x T) {
		s += x
	})
	return s
}

// AddInto writes a + b element-wise to dst. All three views share a shape.
func AddInto[T Number](a, b, dst ndarray.View[T]) {
	as, releaseA := Rows(a)
	defer releaseA()
	bs, releaseB := Rows(b)
	defer releaseB()

	ds, commit := Writable(dst)
	for i := range ds {
		ds[i] = as[i] + bs[i]
	}
	commit()
}
