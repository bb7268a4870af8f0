package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense wraps the storage of m as a rank-2 Float64 array without copying.
// Views created with (*mat.Dense).Slice have a row stride wider than their
// column count and come back as Strided arrays.
func FromDense(m *mat.Dense) (*Array, error) {
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("%w: empty gonum matrix", ErrShape)
	}
	raw := m.RawMatrix()
	if raw.Rows > 0 && raw.Cols > 0 && raw.Stride < raw.Cols {
		return nil, fmt.Errorf("%w: gonum stride %d below column count %d", ErrStrides, raw.Stride, raw.Cols)
	}
	return FromStrided(raw.Data, Shape{raw.Rows, raw.Cols}, []int{raw.Stride, 1}, 0)
}

// ToDense copies a rank-2 Float64 array into a new gonum matrix.
func ToDense(a *Array) (*mat.Dense, error) {
	if a.kind != Float64 {
		return nil, fmt.Errorf("%w: gonum matrices hold float64, array holds %s", ErrKind, a.kind)
	}
	if a.Rank() != 2 || a.Empty() {
		return nil, fmt.Errorf("%w: gonum matrices need a non-empty rank-2 shape, got %v", ErrShape, a.shape)
	}
	data, err := Values[float64](a)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(a.shape[0], a.shape[1], data), nil
}
