package vecmath

import (
	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Sum is the float64 sum kernel: x = [ΣX1 + ΣX2], i = [ΣI1 + ΣI2].
func Sum[I ndarray.Index](in kernel.Operands[float64, I], out kernel.Results[float64, I]) error {
	out.X.Set(0, total(in.X1)+total(in.X2))
	out.I.Set(0, kernel.Accumulate(in.I1)+kernel.Accumulate(in.I2))
	return nil
}

func total(v ndarray.View[float64]) float64 {
	x, release := kernel.Rows(v)
	defer release()
	return algovecmath.Sum(x)
}
