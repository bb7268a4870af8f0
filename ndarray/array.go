package ndarray

import (
	"fmt"

	"github.com/x448/float16"
)

// Array is a typed view over a borrowed buffer. Its element kind, shape and
// strides are fixed at construction.
type Array struct {
	kind    Kind
	shape   Shape
	strides []int
	offset  int
	order   Layout
	data    any
}

// New allocates a zeroed array of the given shape in the given layout.
func New[T Element](shape Shape, layout Layout) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if layout != RowMajor && layout != ColMajor {
		return nil, fmt.Errorf("%w: New needs C or F, got %s", ErrLayout, layout)
	}
	return &Array{
		kind:    KindOf[T](),
		shape:   shape.Clone(),
		strides: StridesFor(shape, layout),
		order:   layout,
		data:    make([]T, shape.NumElements()),
	}, nil
}

// FromSlice wraps data, stored in layout's memory order, without copying.
func FromSlice[T Element](data []T, shape Shape, layout Layout) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if layout != RowMajor && layout != ColMajor {
		return nil, fmt.Errorf("%w: FromSlice needs C or F, got %s", ErrLayout, layout)
	}
	if n := shape.NumElements(); len(data) < n {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, buffer has %d", ErrBuffer, shape, n, len(data))
	}
	return &Array{
		kind:    KindOf[T](),
		shape:   shape.Clone(),
		strides: StridesFor(shape, layout),
		order:   layout,
		data:    data,
	}, nil
}

// FromStrided wraps data with explicit element strides and a starting offset.
// Strides must be non-negative and every addressed element must lie inside data.
func FromStrided[T Element](data []T, shape Shape, strides []int, offset int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrStrides, len(strides), len(shape))
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrStrides, offset)
	}
	last := offset
	for i, s := range strides {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative stride %d on axis %d", ErrStrides, s, i)
		}
		if shape[i] > 0 {
			last += (shape[i] - 1) * s
		}
	}
	if !shape.Empty() && last >= len(data) {
		return nil, fmt.Errorf("%w: strides %v reach element %d, buffer has %d", ErrBuffer, strides, last, len(data))
	}

	a := &Array{
		kind:    KindOf[T](),
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
		order:   Strided,
		data:    data,
	}
	switch {
	case contiguous(a.shape, a.strides, RowMajor):
		a.order = RowMajor
	case contiguous(a.shape, a.strides, ColMajor):
		a.order = ColMajor
	}
	return a, nil
}

// FromRows copies a rectangular matrix given as logical rows into a new
// rank-2 array stored in layout order.
func FromRows[T Element](rows [][]T, layout Layout) (*Array, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(r), cols)
		}
	}

	a, err := New[T](Shape{len(rows), cols}, layout)
	if err != nil {
		return nil, err
	}
	v, _ := ViewOf[T](a)
	for i, r := range rows {
		for j, x := range r {
			v.Set(i*cols+j, x)
		}
	}
	return a, nil
}

// Kind returns the element kind.
func (a *Array) Kind() Kind { return a.kind }

// Shape returns a copy of the shape.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// Strides returns a copy of the element strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// Offset returns the index of the first element in the buffer.
func (a *Array) Offset() int { return a.offset }

func (a *Array) Rank() int { return len(a.shape) }

// Len returns the number of logical elements.
func (a *Array) Len() int { return a.shape.NumElements() }

// Empty reports whether the array has no elements.
func (a *Array) Empty() bool { return a.shape.Empty() }

// Data returns the borrowed buffer as a typed slice in an interface.
func (a *Array) Data() any { return a.data }

// IsRowMajor reports C contiguity.
func (a *Array) IsRowMajor() bool {
	return contiguous(a.shape, a.strides, RowMajor)
}

// IsColMajor reports F contiguity.
func (a *Array) IsColMajor() bool {
	return contiguous(a.shape, a.strides, ColMajor)
}

// Layout returns the layout the array was declared with when its strides still
// satisfy it, otherwise the layout its strides describe.
func (a *Array) Layout() Layout {
	if a.order != Strided && contiguous(a.shape, a.strides, a.order) {
		return a.order
	}
	switch {
	case a.IsRowMajor():
		return RowMajor
	case a.IsColMajor():
		return ColMajor
	}
	return Strided
}

// HasLayout reports whether the array is stored in layout. Strided matches
// arrays that are neither C nor F contiguous.
func (a *Array) HasLayout(layout Layout) bool {
	switch layout {
	case RowMajor:
		return a.IsRowMajor()
	case ColMajor:
		return a.IsColMajor()
	default:
		return !a.IsRowMajor() && !a.IsColMajor()
	}
}

// String summarises the array without its elements.
func (a *Array) String() string {
	return fmt.Sprintf("ndarray(%s, shape=%v, layout=%s)", a.kind, a.shape, a.Layout())
}

// Values returns the elements of a in logical row-major order as a new slice.
func Values[T Element](a *Array) ([]T, error) {
	v, err := ViewOf[T](a)
	if err != nil {
		return nil, err
	}
	out := make([]T, v.Len())
	v.Pack(out)
	return out, nil
}

// Float16s returns the elements in logical row-major order. It fails unless a
// holds Float16.
func (a *Array) Float16s() ([]float16.Float16, error) { return Values[float16.Float16](a) }

// Float32s returns the elements in logical row-major order. It fails unless a
// holds Float32.
func (a *Array) Float32s() ([]float32, error) { return Values[float32](a) }

// Float64s returns the elements in logical row-major order. It fails unless a
// holds Float64.
func (a *Array) Float64s() ([]float64, error) { return Values[float64](a) }

// Int32s returns the elements in logical row-major order. It fails unless a
// holds Int32.
func (a *Array) Int32s() ([]int32, error) { return Values[int32](a) }

// Int64s returns the elements in logical row-major order. It fails unless a
// holds Int64.
func (a *Array) Int64s() ([]int64, error) { return Values[int64](a) }
