package vecmath

import (
	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// XCorr is the float64 circular cross-correlation kernel. Each lag is split
// into two dot products over the wrapped and unwrapped parts of the row.
func XCorr[I ndarray.Index](in kernel.Operands[float64, I], out kernel.Results[float64, I]) error {
	kernel.AddInto(in.I1, in.I2, out.I)

	if in.X1.Len() == 0 {
		return nil
	}
	n := in.Shape[len(in.Shape)-1]

	a, ra := kernel.Rows(in.X1)
	defer ra()
	b, rb := kernel.Rows(in.X2)
	defer rb()

	xs, commit := kernel.Writable(out.X)
	for start := 0; start < len(xs); start += n {
		correlateRow(xs[start:start+n], a[start:start+n], b[start:start+n])
	}
	commit()
	return nil
}

// correlateRow computes dst[k] = Σ_j a[(j+k) mod n]·b[j].
func correlateRow(dst, a, b []float64) {
	n := len(dst)
	for k := 0; k < n; k++ {
		s := algovecmath.DotProduct(a[k:], b[:n-k])
		if k > 0 {
			s += algovecmath.DotProduct(a[:k], b[n-k:])
		}
		dst[k] = s
	}
}
