package kernel

import "github.com/cwbudde/algo-dispatch/ndarray"

// Bind builds typed operands from four input arrays and results from two
// output arrays. It fails with ndarray.ErrKind when an array does not hold V
// or I; shapes are not checked.
func Bind[V ndarray.Float, I ndarray.Index](x1, x2, i1, i2, x, i *ndarray.Array) (Operands[V, I], Results[V, I], error) {
	var (
		in  Operands[V, I]
		out Results[V, I]
		err error
	)
	in.Shape = x1.Shape()
	if in.X1, err = ndarray.ViewOf[V](x1); err != nil {
		return in, out, err
	}
	if in.X2, err = ndarray.ViewOf[V](x2); err != nil {
		return in, out, err
	}
	if in.I1, err = ndarray.ViewOf[I](i1); err != nil {
		return in, out, err
	}
	if in.I2, err = ndarray.ViewOf[I](i2); err != nil {
		return in, out, err
	}
	if out.X, err = ndarray.ViewOf[V](x); err != nil {
		return in, out, err
	}
	if out.I, err = ndarray.ViewOf[I](i); err != nil {
		return in, out, err
	}
	return in, out, nil
}
