package generic

import (
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// XCorr computes the circular cross-correlation of X1 and X2 along the last
// axis by direct summation:
//
//	x[r, k] = Σ_j X1[r, (j+k) mod n] · X2[r, j]
//
// and i = I1 + I2 element-wise.
func XCorr[V ndarray.Float, I ndarray.Index](in kernel.Operands[V, I], out kernel.Results[V, I]) error {
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
		CircularCorrelate(xs[start:start+n], a[start:start+n], b[start:start+n])
	}
	commit()
	return nil
}

// CircularCorrelate writes the circular cross-correlation of a and b to dst.
// All three slices have the same length.
func CircularCorrelate[V ndarray.Float](dst, a, b []V) {
	n := len(dst)
	for k := 0; k < n; k++ {
		var s V
		for j := 0; j < n; j++ {
			idx := j + k
			if idx >= n {
				idx -= n
			}
			s += a[idx] * b[j]
		}
		dst[k] = s
	}
}
