package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-dispatch/ndarray"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[V ndarray.Float](t testing.TB, got, want []V, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[V ndarray.Float](a, b []V) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequireIdentical fails t unless a and b have the same kind and shape and
// every logical element has the same bit pattern. Layout may differ.
func RequireIdentical(t testing.TB, a, b *ndarray.Array) {
	t.Helper()
	if a.Kind() != b.Kind() {
		t.Fatalf("kind mismatch: %s vs %s", a.Kind(), b.Kind())
	}
	if !a.Shape().Equal(b.Shape()) {
		t.Fatalf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	ab, bb := bits(t, a), bits(t, b)
	for i := range ab {
		if ab[i] != bb[i] {
			t.Fatalf("element %d differs: %#x vs %#x", i, ab[i], bb[i])
		}
	}
}

func bits(t testing.TB, a *ndarray.Array) []uint64 {
	t.Helper()
	out := make([]uint64, a.Len())
	switch a.Kind() {
	case ndarray.Float32:
		v, _ := ndarray.ViewOf[float32](a)
		v.Each(func(i int, x float32) { out[i] = uint64(math.Float32bits(x)) })
	case ndarray.Float64:
		v, _ := ndarray.ViewOf[float64](a)
		v.Each(func(i int, x float64) { out[i] = math.Float64bits(x) })
	case ndarray.Int32:
		v, _ := ndarray.ViewOf[int32](a)
		v.Each(func(i int, x int32) { out[i] = uint64(uint32(x)) })
	case ndarray.Int64:
		v, _ := ndarray.ViewOf[int64](a)
		v.Each(func(i int, x int64) { out[i] = uint64(x) })
	default:
		t.Fatalf("unsupported kind %s", a.Kind())
	}
	return out
}
