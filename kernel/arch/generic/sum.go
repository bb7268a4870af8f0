package generic

import (
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Sum reduces both pairs to one element each: x = [ΣX1 + ΣX2] and
// i = [ΣI1 + ΣI2]. Each array is summed in logical row-major order.
func Sum[V ndarray.Float, I ndarray.Index](in kernel.Operands[V, I], out kernel.Results[V, I]) error {
	out.X.Set(0, kernel.Accumulate(in.X1)+kernel.Accumulate(in.X2))
	out.I.Set(0, kernel.Accumulate(in.I1)+kernel.Accumulate(in.I2))
	return nil
}
