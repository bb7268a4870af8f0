package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Quad is the four-array argument set of one dispatch call.
type Quad struct {
	X1, X2, I1, I2 *ndarray.Array
}

// Matrix converts logical rows to an array of kind in layout.
func Matrix(t testing.TB, rows [][]int64, kind ndarray.Kind, layout ndarray.Layout) *ndarray.Array {
	t.Helper()
	base, err := ndarray.FromRows(rows, ndarray.RowMajor)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ndarray.Convert(base, kind, layout)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

// Scenario builds the 2x2 inputs [[1,2],[3,4]] and [[5,6],[7,8]] for both
// value and index arrays, as used throughout the harness.
func Scenario(t testing.TB, valueKind, indexKind ndarray.Kind, layout ndarray.Layout) Quad {
	t.Helper()
	a := [][]int64{{1, 2}, {3, 4}}
	b := [][]int64{{5, 6}, {7, 8}}
	return Quad{
		X1: Matrix(t, a, valueKind, layout),
		X2: Matrix(t, b, valueKind, layout),
		I1: Matrix(t, a, indexKind, layout),
		I2: Matrix(t, b, indexKind, layout),
	}
}

// Noise returns n deterministic values in [-amplitude, amplitude).
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Random builds a rows x cols quad filled with seeded noise (values) and
// seeded small integers (indices) in layout.
func Random(t testing.TB, rows, cols int, valueKind, indexKind ndarray.Kind, layout ndarray.Layout, seed int64) Quad {
	t.Helper()
	n := rows * cols
	shape := ndarray.Shape{rows, cols}

	values := func(seed int64) *ndarray.Array {
		a, err := ndarray.FromSlice(Noise(seed, 100, n), shape, ndarray.RowMajor)
		if err != nil {
			t.Fatal(err)
		}
		out, err := ndarray.Convert(a, valueKind, layout)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	indices := func(seed int64) *ndarray.Array {
		rng := rand.New(rand.NewSource(seed))
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(1000) - 500
		}
		a, err := ndarray.FromSlice(data, shape, ndarray.RowMajor)
		if err != nil {
			t.Fatal(err)
		}
		out, err := ndarray.Convert(a, indexKind, layout)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}

	return Quad{
		X1: values(seed),
		X2: values(seed + 1),
		I1: indices(seed + 2),
		I2: indices(seed + 3),
	}
}
