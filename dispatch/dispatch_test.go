package dispatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispatch/internal/testutil"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

var (
	valueKinds = []ndarray.Kind{ndarray.Float32, ndarray.Float64}
	indexKinds = []ndarray.Kind{ndarray.Int32, ndarray.Int64}
	layouts    = []ndarray.Layout{ndarray.RowMajor, ndarray.ColMajor}
	kernels    = []string{"sum", "add", "max", "xcorr"}
)

func compute(t *testing.T, q testutil.Quad, opts ...Option) Result {
	t.Helper()
	res, err := Compute(q.X1, q.X2, q.I1, q.I2, opts...)
	require.NoError(t, err)
	return res
}

// asFloat64 reads any supported result as float64 in logical order.
func asFloat64(t *testing.T, a *ndarray.Array) []float64 {
	t.Helper()
	c, err := ndarray.Convert(a, ndarray.Float64, ndarray.RowMajor)
	require.NoError(t, err)
	v, err := c.Float64s()
	require.NoError(t, err)
	return v
}

func TestAllTypePairs(t *testing.T) {
	for _, vk := range valueKinds {
		for _, ik := range indexKinds {
			for _, layout := range layouts {
				name := fmt.Sprintf("%s_%s/%s", vk.Short(), ik.Short(), layout)
				t.Run(name, func(t *testing.T) {
					res := compute(t, testutil.Scenario(t, vk, ik, layout))

					assert.Equal(t, vk, res.Values.Kind())
					assert.Equal(t, ik, res.Indices.Kind())
					assert.Equal(t, ndarray.Shape{1}, res.Values.Shape())
					assert.Equal(t, []float64{36}, asFloat64(t, res.Values))
					assert.Equal(t, []float64{36}, asFloat64(t, res.Indices))
					assert.Equal(t, "sum", res.Kernel)
					assert.Equal(t, vk, res.Key.Value)
					assert.Equal(t, ik, res.Key.Index)
				})
			}
		}
	}
}

func TestScenarioCEqualsF(t *testing.T) {
	c := compute(t, testutil.Scenario(t, ndarray.Float64, ndarray.Int32, ndarray.RowMajor), WithTag("f64C_i32C"))
	f := compute(t, testutil.Scenario(t, ndarray.Float64, ndarray.Int32, ndarray.ColMajor), WithTag("f64F_i32F"))

	testutil.RequireIdentical(t, c.Values, f.Values)
	testutil.RequireIdentical(t, c.Indices, f.Indices)
	assert.Equal(t, "f64C_i32C", c.Key.Tag())
	assert.Equal(t, "f64F_i32F", f.Key.Tag())
}

func TestLayoutIndependence(t *testing.T) {
	for _, name := range kernels {
		for _, vk := range valueKinds {
			t.Run(name+"/"+vk.Short(), func(t *testing.T) {
				c := testutil.Random(t, 13, 7, vk, ndarray.Int64, ndarray.RowMajor, 5)
				f := testutil.Random(t, 13, 7, vk, ndarray.Int64, ndarray.ColMajor, 5)

				rc := compute(t, c, WithKernel(name))
				rf := compute(t, f, WithKernel(name))
				testutil.RequireIdentical(t, rc.Values, rf.Values)
				testutil.RequireIdentical(t, rc.Indices, rf.Indices)
			})
		}
	}
}

func TestStridedMatchesContiguous(t *testing.T) {
	base := make([]float64, 6*8)
	for k := range base {
		base[k] = float64(k%11) - 3.5
	}
	// Two strided 4x5 windows over one buffer.
	x1, err := ndarray.FromStrided(base, ndarray.Shape{4, 5}, []int{8, 1}, 9)
	require.NoError(t, err)
	x2, err := ndarray.FromStrided(base, ndarray.Shape{4, 5}, []int{8, 1}, 2)
	require.NoError(t, err)
	require.Equal(t, ndarray.Strided, x1.Layout())

	v1, _ := x1.Float64s()
	v2, _ := x2.Float64s()
	c1, _ := ndarray.FromSlice(v1, ndarray.Shape{4, 5}, ndarray.RowMajor)
	c2, _ := ndarray.FromSlice(v2, ndarray.Shape{4, 5}, ndarray.RowMajor)

	idx := testutil.Random(t, 4, 5, ndarray.Float64, ndarray.Int32, ndarray.ColMajor, 8)

	for _, name := range kernels {
		t.Run(name, func(t *testing.T) {
			rs := compute(t, testutil.Quad{X1: x1, X2: x2, I1: idx.I1, I2: idx.I2}, WithKernel(name))
			rc := compute(t, testutil.Quad{X1: c1, X2: c2, I1: idx.I1, I2: idx.I2}, WithKernel(name))
			testutil.RequireIdentical(t, rs.Values, rc.Values)
			testutil.RequireIdentical(t, rs.Indices, rc.Indices)
			assert.Equal(t, "f64_i32F", rs.Key.Tag())
		})
	}
}

func TestIdempotent(t *testing.T) {
	q := testutil.Random(t, 50, 9, ndarray.Float32, ndarray.Int32, ndarray.ColMajor, 21)
	for _, name := range kernels {
		first := compute(t, q, WithKernel(name))
		for n := 0; n < 3; n++ {
			again := compute(t, q, WithKernel(name))
			testutil.RequireIdentical(t, first.Values, again.Values)
			testutil.RequireIdentical(t, first.Indices, again.Indices)
		}
	}
}

func TestInputsUnmodified(t *testing.T) {
	q := testutil.Random(t, 6, 4, ndarray.Float64, ndarray.Int64, ndarray.ColMajor, 2)
	before := testutil.Random(t, 6, 4, ndarray.Float64, ndarray.Int64, ndarray.ColMajor, 2)

	for _, name := range kernels {
		compute(t, q, WithKernel(name))
	}
	testutil.RequireIdentical(t, before.X1, q.X1)
	testutil.RequireIdentical(t, before.X2, q.X2)
	testutil.RequireIdentical(t, before.I1, q.I1)
	testutil.RequireIdentical(t, before.I2, q.I2)
}

func TestKernels(t *testing.T) {
	q := testutil.Scenario(t, ndarray.Float64, ndarray.Int64, ndarray.ColMajor)

	tests := []struct {
		kernel  string
		shape   ndarray.Shape
		values  []float64
		indices []float64
	}{
		{"sum", ndarray.Shape{1}, []float64{36}, []float64{36}},
		{"add", ndarray.Shape{2, 2}, []float64{6, 8, 10, 12}, []float64{6, 8, 10, 12}},
		{"max", ndarray.Shape{2, 2}, []float64{5, 6, 7, 8}, []float64{5, 6, 7, 8}},
		// [1,2]·[5,6] at lags 0 and 1: 1*5+2*6, 2*5+1*6.
		{"xcorr", ndarray.Shape{2, 2}, []float64{17, 16, 53, 52}, []float64{6, 8, 10, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.kernel, func(t *testing.T) {
			res := compute(t, q, WithKernel(tt.kernel))
			assert.Equal(t, tt.shape, res.Values.Shape())
			assert.Equal(t, tt.shape, res.Indices.Shape())
			testutil.RequireSliceNearlyEqual(t, asFloat64(t, res.Values), tt.values, 1e-9)
			assert.Equal(t, tt.indices, asFloat64(t, res.Indices))
		})
	}
}

func TestOutputLayout(t *testing.T) {
	q := testutil.Random(t, 3, 4, ndarray.Float64, ndarray.Int32, ndarray.ColMajor, 1)

	res := compute(t, q, WithKernel("add"))
	assert.Equal(t, ndarray.RowMajor, res.Values.Layout())
	assert.Equal(t, ndarray.RowMajor, res.Indices.Layout())

	col := compute(t, q, WithKernel("add"), WithOutputLayout(ndarray.ColMajor))
	assert.Equal(t, ndarray.ColMajor, col.Values.Layout())
	assert.Equal(t, ndarray.ColMajor, col.Indices.Layout())
	testutil.RequireIdentical(t, res.Values, col.Values)

	kept := compute(t, q, WithKernel("add"), WithPreservedLayout())
	assert.Equal(t, ndarray.ColMajor, kept.Values.Layout())

	ignored := compute(t, q, WithKernel("add"), WithOutputLayout(ndarray.Strided))
	assert.Equal(t, ndarray.RowMajor, ignored.Values.Layout())
}

func TestHigherRank(t *testing.T) {
	shape := ndarray.Shape{2, 3, 4}
	n := shape.NumElements()
	xs := testutil.Noise(4, 10, n)
	is := make([]int32, n)
	for k := range is {
		is[k] = int32(k)
	}

	x, err := ndarray.FromSlice(xs, shape, ndarray.RowMajor)
	require.NoError(t, err)
	i, err := ndarray.FromSlice(is, shape, ndarray.RowMajor)
	require.NoError(t, err)
	xf, err := ndarray.Convert(x, ndarray.Float64, ndarray.ColMajor)
	require.NoError(t, err)
	iF, err := ndarray.Convert(i, ndarray.Int32, ndarray.ColMajor)
	require.NoError(t, err)

	for _, name := range kernels {
		rc, err := Compute(x, x, i, i, WithKernel(name))
		require.NoError(t, err, name)
		rf, err := Compute(xf, xf, iF, iF, WithKernel(name))
		require.NoError(t, err, name)
		testutil.RequireIdentical(t, rc.Values, rf.Values)
		testutil.RequireIdentical(t, rc.Indices, rf.Indices)
	}
}

func TestGenericKernels(t *testing.T) {
	q := testutil.Random(t, 8, 8, ndarray.Float64, ndarray.Int64, ndarray.RowMajor, 9)

	res := compute(t, q, WithGenericKernels())
	assert.Equal(t, "generic", res.Variant)

	pinned := compute(t, q, WithKernel("xcorr"), WithVariant("generic"))
	assert.Equal(t, "generic", pinned.Variant)

	fast := compute(t, q, WithKernel("xcorr"))
	testutil.RequireSliceNearlyEqual(t, asFloat64(t, fast.Values), asFloat64(t, pinned.Values), 1e-6)
}

func TestDispatcherDefaults(t *testing.T) {
	d := New(WithKernel("add"), WithOutputLayout(ndarray.ColMajor))
	assert.Equal(t, "add", d.Config().Kernel)

	q := testutil.Scenario(t, ndarray.Float32, ndarray.Int32, ndarray.RowMajor)
	res, err := d.Compute(q.X1, q.X2, q.I1, q.I2)
	require.NoError(t, err)
	assert.Equal(t, "add", res.Kernel)
	assert.Equal(t, ndarray.ColMajor, res.Values.Layout())

	// Per-call options override the defaults.
	res, err = d.Compute(q.X1, q.X2, q.I1, q.I2, WithKernel("sum"))
	require.NoError(t, err)
	assert.Equal(t, "sum", res.Kernel)
}

func TestErrorsCarryNoResults(t *testing.T) {
	q := testutil.Scenario(t, ndarray.Float64, ndarray.Int32, ndarray.RowMajor)
	res, err := Compute(q.X1, q.X2, q.I1, q.I2, WithKernel("median"))
	require.Error(t, err)
	assert.Nil(t, res.Values)
	assert.Nil(t, res.Indices)

	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "kernel", de.Arg)
}
