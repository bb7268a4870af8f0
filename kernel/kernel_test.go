package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

func TestOpFor(t *testing.T) {
	var called string
	e := &Entry{
		Name:    "probe",
		Variant: "generic",
		F32I32: func(Operands[float32, int32], Results[float32, int32]) error {
			called = "f32i32"
			return nil
		},
		F64I64: func(Operands[float64, int64], Results[float64, int64]) error {
			called = "f64i64"
			return nil
		},
	}

	op := OpFor[float32, int32](e)
	require.NotNil(t, op)
	require.NoError(t, op(Operands[float32, int32]{}, Results[float32, int32]{}))
	assert.Equal(t, "f32i32", called)

	op64 := OpFor[float64, int64](e)
	require.NotNil(t, op64)
	require.NoError(t, op64(Operands[float64, int64]{}, Results[float64, int64]{}))
	assert.Equal(t, "f64i64", called)

	assert.Nil(t, OpFor[float32, int64](e))
	assert.Nil(t, OpFor[float64, int32](e))
}

func TestEntrySupportsAndPairs(t *testing.T) {
	e := full("sum", "generic", cpu.SIMDNone, 0)
	assert.True(t, e.Supports(ndarray.Float32, ndarray.Int64))
	assert.False(t, e.Supports(ndarray.Float16, ndarray.Int64))
	assert.False(t, e.Supports(ndarray.Int32, ndarray.Float64))
	assert.Equal(t, []string{"f32/i32", "f32/i64", "f64/i32", "f64/i64"}, e.Pairs())

	partial := Entry{F64I32: nop[float64, int32]}
	assert.Equal(t, []string{"f64/i32"}, partial.Pairs())
}

func TestResultShape(t *testing.T) {
	e := Entry{}
	in := ndarray.Shape{3, 4}
	assert.Equal(t, in, e.ResultShape(in))

	e.OutputShape = Scalar
	assert.Equal(t, ndarray.Shape{1}, e.ResultShape(in))
}

func TestBindKindMismatch(t *testing.T) {
	f, err := ndarray.New[float64](ndarray.Shape{2}, ndarray.RowMajor)
	require.NoError(t, err)
	i, err := ndarray.New[int32](ndarray.Shape{2}, ndarray.RowMajor)
	require.NoError(t, err)

	in, out, err := Bind[float64, int32](f, f, i, i, f, i)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2}, in.Shape)
	assert.Equal(t, 2, out.X.Len())

	_, _, err = Bind[float32, int32](f, f, i, i, f, i)
	assert.ErrorIs(t, err, ndarray.ErrKind)
}
