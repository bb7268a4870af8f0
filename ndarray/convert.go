package ndarray

import (
	"fmt"

	"github.com/x448/float16"
)

// Convert returns a new array holding a's elements cast to kind and stored in
// layout (C or F). Float16 values widen through float32; integer to integer
// casts go through int64 and floating casts through float64, with Go's
// conversion rules (truncation toward zero for float to integer).
func Convert(a *Array, kind Kind, layout Layout) (*Array, error) {
	switch kind {
	case Float16:
		return convertTo[float16.Float16](a, layout)
	case Float32:
		return convertTo[float32](a, layout)
	case Float64:
		return convertTo[float64](a, layout)
	case Int32:
		return convertTo[int32](a, layout)
	case Int64:
		return convertTo[int64](a, layout)
	}
	return nil, fmt.Errorf("%w: cannot convert to %s", ErrKind, kind)
}

func convertTo[D Element](a *Array, layout Layout) (*Array, error) {
	out, err := New[D](a.shape, layout)
	if err != nil {
		return nil, err
	}
	dst, _ := ViewOf[D](out)

	if a.kind.IsInteger() {
		src, err := loadInt64(a)
		if err != nil {
			return nil, err
		}
		dst.Unpack(castSlice[int64, D](src))
		return out, nil
	}
	src, err := loadFloat64(a)
	if err != nil {
		return nil, err
	}
	dst.Unpack(castSlice[float64, D](src))
	return out, nil
}

func loadInt64(a *Array) ([]int64, error) {
	switch a.kind {
	case Int32:
		vals, err := Values[int32](a)
		if err != nil {
			return nil, err
		}
		out := make([]int64, len(vals))
		for i, x := range vals {
			out[i] = int64(x)
		}
		return out, nil
	case Int64:
		return Values[int64](a)
	}
	return nil, fmt.Errorf("%w: %s is not an integer kind", ErrKind, a.kind)
}

func loadFloat64(a *Array) ([]float64, error) {
	out := make([]float64, a.Len())
	switch a.kind {
	case Float16:
		v, err := ViewOf[float16.Float16](a)
		if err != nil {
			return nil, err
		}
		v.Each(func(i int, x float16.Float16) { out[i] = float64(x.Float32()) })
	case Float32:
		v, err := ViewOf[float32](a)
		if err != nil {
			return nil, err
		}
		v.Each(func(i int, x float32) { out[i] = float64(x) })
	case Float64:
		v, err := ViewOf[float64](a)
		if err != nil {
			return nil, err
		}
		v.Pack(out)
	default:
		return nil, fmt.Errorf("%w: %s is not a floating kind", ErrKind, a.kind)
	}
	return out, nil
}

func castSlice[S int64 | float64, D Element](src []S) []D {
	out := make([]D, len(src))
	switch o := any(out).(type) {
	case []float16.Float16:
		for i, x := range src {
			o[i] = float16.Fromfloat32(float32(x))
		}
	case []float32:
		for i, x := range src {
			o[i] = float32(x)
		}
	case []float64:
		for i, x := range src {
			o[i] = float64(x)
		}
	case []int32:
		for i, x := range src {
			o[i] = int32(x)
		}
	case []int64:
		for i, x := range src {
			o[i] = int64(x)
		}
	}
	return out
}
