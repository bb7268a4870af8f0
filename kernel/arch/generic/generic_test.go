package generic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-dispatch/internal/testutil"
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// call runs op on q with outputs of shape outShape in layout.
func call[V ndarray.Float, I ndarray.Index](t *testing.T, op kernel.Op[V, I], q testutil.Quad, outShape ndarray.Shape, layout ndarray.Layout) ([]V, []I) {
	t.Helper()
	x, err := ndarray.New[V](outShape, layout)
	if err != nil {
		t.Fatal(err)
	}
	i, err := ndarray.New[I](outShape, layout)
	if err != nil {
		t.Fatal(err)
	}
	in, out, err := kernel.Bind[V, I](q.X1, q.X2, q.I1, q.I2, x, i)
	if err != nil {
		t.Fatal(err)
	}
	if err := op(in, out); err != nil {
		t.Fatalf("op: %v", err)
	}
	xs, _ := ndarray.Values[V](x)
	is, _ := ndarray.Values[I](i)
	return xs, is
}

var layouts = []ndarray.Layout{ndarray.RowMajor, ndarray.ColMajor}

func TestSum(t *testing.T) {
	for _, layout := range layouts {
		t.Run(layout.String(), func(t *testing.T) {
			q := testutil.Scenario(t, ndarray.Float64, ndarray.Int32, layout)
			xs, is := call(t, Sum[float64, int32], q, ndarray.Shape{1}, ndarray.RowMajor)
			if xs[0] != 36 || is[0] != 36 {
				t.Fatalf("Sum = (%v, %v), want (36, 36)", xs[0], is[0])
			}
		})
	}
}

func TestSumEmpty(t *testing.T) {
	q := testutil.Random(t, 0, 3, ndarray.Float32, ndarray.Int64, ndarray.RowMajor, 1)
	xs, is := call(t, Sum[float32, int64], q, ndarray.Shape{1}, ndarray.RowMajor)
	if xs[0] != 0 || is[0] != 0 {
		t.Fatalf("Sum of empty = (%v, %v), want zeros", xs[0], is[0])
	}
}

func TestAdd(t *testing.T) {
	for _, layout := range layouts {
		t.Run(layout.String(), func(t *testing.T) {
			q := testutil.Scenario(t, ndarray.Float32, ndarray.Int64, layout)
			xs, is := call(t, Add[float32, int64], q, ndarray.Shape{2, 2}, layout)
			if diff := cmp.Diff([]float32{6, 8, 10, 12}, xs); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]int64{6, 8, 10, 12}, is); diff != "" {
				t.Errorf("indices (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMax(t *testing.T) {
	nan := math.NaN()
	x1, _ := ndarray.FromSlice([]float64{1, 9, nan, 4, 2}, ndarray.Shape{5}, ndarray.RowMajor)
	x2, _ := ndarray.FromSlice([]float64{2, 3, 7, nan, 2}, ndarray.Shape{5}, ndarray.RowMajor)
	i1, _ := ndarray.FromSlice([]int32{10, 11, 12, 13, 14}, ndarray.Shape{5}, ndarray.RowMajor)
	i2, _ := ndarray.FromSlice([]int32{20, 21, 22, 23, 24}, ndarray.Shape{5}, ndarray.RowMajor)

	xs, is := call(t, Max[float64, int32], testutil.Quad{X1: x1, X2: x2, I1: i1, I2: i2}, ndarray.Shape{5}, ndarray.RowMajor)

	wantI := []int32{20, 11, 12, 13, 14}
	if diff := cmp.Diff(wantI, is); diff != "" {
		t.Fatalf("indices (-want +got):\n%s", diff)
	}
	if xs[0] != 2 || xs[1] != 9 || !math.IsNaN(xs[2]) || xs[3] != 4 || xs[4] != 2 {
		t.Fatalf("values = %v", xs)
	}
}

func TestXCorr(t *testing.T) {
	x1, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {0, 1, 0}}, ndarray.ColMajor)
	x2, _ := ndarray.FromRows([][]float64{{1, 0, 0}, {0, 0, 1}}, ndarray.ColMajor)
	i1, _ := ndarray.FromRows([][]int64{{1, 1, 1}, {2, 2, 2}}, ndarray.ColMajor)
	i2, _ := ndarray.FromRows([][]int64{{0, 1, 2}, {0, 1, 2}}, ndarray.ColMajor)

	xs, is := call(t, XCorr[float64, int64], testutil.Quad{X1: x1, X2: x2, I1: i1, I2: i2}, ndarray.Shape{2, 3}, ndarray.RowMajor)

	// Row 0 correlates with a unit impulse at lag 0, row 1 with one at j=2.
	want := []float64{1, 2, 3, 0, 0, 1}
	if diff := cmp.Diff(want, xs); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 2, 3, 4}, is); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
}

func TestCircularCorrelate(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{1, 2, 3, 4}
	dst := make([]float32, 4)
	CircularCorrelate(dst, a, b)

	// c[k] = Σ_j a[(j+k) mod 4]·b[j]
	want := []float32{30, 24, 22, 24}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLayoutIndependence(t *testing.T) {
	ops := map[string]kernel.Op[float64, int64]{
		"add":   Add[float64, int64],
		"max":   Max[float64, int64],
		"xcorr": XCorr[float64, int64],
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			c := testutil.Random(t, 7, 5, ndarray.Float64, ndarray.Int64, ndarray.RowMajor, 42)
			f := testutil.Random(t, 7, 5, ndarray.Float64, ndarray.Int64, ndarray.ColMajor, 42)
			cx, ci := call(t, op, c, ndarray.Shape{7, 5}, ndarray.RowMajor)
			fx, fi := call(t, op, f, ndarray.Shape{7, 5}, ndarray.ColMajor)
			for k := range cx {
				if math.Float64bits(cx[k]) != math.Float64bits(fx[k]) {
					t.Fatalf("value %d differs: %v vs %v", k, cx[k], fx[k])
				}
			}
			if diff := cmp.Diff(ci, fi); diff != "" {
				t.Fatalf("indices differ (-C +F):\n%s", diff)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	names := kernel.Global.Names()
	for _, want := range []string{"add", "max", "sum", "xcorr"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("kernel %q not registered", want)
		}
	}
}
