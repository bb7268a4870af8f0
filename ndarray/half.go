package ndarray

import "github.com/x448/float16"

// FromFloat32AsHalf rounds data to IEEE 754 half precision and wraps the result
// as a Float16 array. data is given in layout's memory order.
func FromFloat32AsHalf(data []float32, shape Shape, layout Layout) (*Array, error) {
	half := make([]float16.Float16, len(data))
	for i, x := range data {
		half[i] = float16.Fromfloat32(x)
	}
	return FromSlice(half, shape, layout)
}
