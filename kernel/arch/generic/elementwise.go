package generic

import (
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Add computes x = X1 + X2 and i = I1 + I2 element-wise.
func Add[V ndarray.Float, I ndarray.Index](in kernel.Operands[V, I], out kernel.Results[V, I]) error {
	kernel.AddInto(in.X1, in.X2, out.X)
	kernel.AddInto(in.I1, in.I2, out.I)
	return nil
}

// Max picks, per element, (X2, I2) where X2 > X1 and (X1, I1) otherwise. A NaN
// in X1 is kept.
func Max[V ndarray.Float, I ndarray.Index](in kernel.Operands[V, I], out kernel.Results[V, I]) error {
	x1, r1 := kernel.Rows(in.X1)
	defer r1()
	x2, r2 := kernel.Rows(in.X2)
	defer r2()
	i1, r3 := kernel.Rows(in.I1)
	defer r3()
	i2, r4 := kernel.Rows(in.I2)
	defer r4()

	xs, commitX := kernel.Writable(out.X)
	is, commitI := kernel.Writable(out.I)
	for k := range xs {
		if x2[k] > x1[k] {
			xs[k], is[k] = x2[k], i2[k]
		} else {
			xs[k], is[k] = x1[k], i1[k]
		}
	}
	commitX()
	commitI()
	return nil
}
