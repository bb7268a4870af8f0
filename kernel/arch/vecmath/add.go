package vecmath

import (
	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Add is the float64 element-wise add kernel.
func Add[I ndarray.Index](in kernel.Operands[float64, I], out kernel.Results[float64, I]) error {
	a, ra := kernel.Rows(in.X1)
	defer ra()
	b, rb := kernel.Rows(in.X2)
	defer rb()

	dst, commit := kernel.Writable(out.X)
	algovecmath.AddBlock(dst, a, b)
	commit()

	kernel.AddInto(in.I1, in.I2, out.I)
	return nil
}
