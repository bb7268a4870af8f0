package kernel

import (
	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Operands are the read-only inputs of one kernel call. All four views share
// Shape.
type Operands[V ndarray.Float, I ndarray.Index] struct {
	Shape  ndarray.Shape
	X1, X2 ndarray.View[V]
	I1, I2 ndarray.View[I]
}

// Results are the freshly allocated outputs a kernel writes to. Their shape is
// the entry's output shape for the operand shape.
type Results[V ndarray.Float, I ndarray.Index] struct {
	X ndarray.View[V]
	I ndarray.View[I]
}

// Op computes out from in. It must not write to in.
type Op[V ndarray.Float, I ndarray.Index] func(in Operands[V, I], out Results[V, I]) error

// ShapeFunc maps an operand shape to the result shape.
type ShapeFunc func(in ndarray.Shape) ndarray.Shape

// Entry is one registered variant of a named kernel.
//
// Only the type pairs a variant implements need to be set.
type Entry struct {
	// Name is the kernel name callers select ("sum", "xcorr").
	Name string

	// Variant identifies the implementation ("generic", "vecmath", "fft").
	Variant string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders variants of one kernel. Suggested values:
	//   - generic: 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - algorithmic speedups (fft): 20
	Priority int

	// OutputShape returns the result shape. Nil means the operand shape.
	OutputShape ShapeFunc

	F32I32 Op[float32, int32]
	F32I64 Op[float32, int64]
	F64I32 Op[float64, int32]
	F64I64 Op[float64, int64]
}

// Supports reports whether e implements the (value, index) kind pair.
func (e *Entry) Supports(value, index ndarray.Kind) bool {
	switch {
	case value == ndarray.Float32 && index == ndarray.Int32:
		return e.F32I32 != nil
	case value == ndarray.Float32 && index == ndarray.Int64:
		return e.F32I64 != nil
	case value == ndarray.Float64 && index == ndarray.Int32:
		return e.F64I32 != nil
	case value == ndarray.Float64 && index == ndarray.Int64:
		return e.F64I64 != nil
	default:
		return false
	}
}

// Pairs returns the kind pairs e implements as canonical short names
// ("f32/i32").
func (e *Entry) Pairs() []string {
	var out []string
	for _, v := range []ndarray.Kind{ndarray.Float32, ndarray.Float64} {
		for _, i := range []ndarray.Kind{ndarray.Int32, ndarray.Int64} {
			if e.Supports(v, i) {
				out = append(out, v.Short()+"/"+i.Short())
			}
		}
	}
	return out
}

// ResultShape applies OutputShape to in.
func (e *Entry) ResultShape(in ndarray.Shape) ndarray.Shape {
	if e.OutputShape == nil {
		return in.Clone()
	}
	return e.OutputShape(in)
}

// OpFor returns the op of e for V and I, or nil if e does not implement it.
func OpFor[V ndarray.Float, I ndarray.Index](e *Entry) Op[V, I] {
	var op any
	switch any(*new(V)).(type) {
	case float32:
		if _, ok := any(*new(I)).(int32); ok {
			op = e.F32I32
		} else {
			op = e.F32I64
		}
	case float64:
		if _, ok := any(*new(I)).(int32); ok {
			op = e.F64I32
		} else {
			op = e.F64I64
		}
	}
	f, _ := op.(Op[V, I])
	return f
}

// Scalar is the OutputShape of reductions: a single element.
func Scalar(ndarray.Shape) ndarray.Shape { return ndarray.Shape{1} }
