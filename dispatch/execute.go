package dispatch

import (
	"fmt"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// run allocates the results and executes the kernel for one type pair.
func run[V ndarray.Float, I ndarray.Index](p plan, args [4]*ndarray.Array) (*ndarray.Array, *ndarray.Array, error) {
	op := kernel.OpFor[V, I](&p.entry)
	if op == nil {
		return nil, nil, newError("kernel", ErrUnsupportedType, "%s/%s has no %s", p.entry.Name, p.entry.Variant, p.key.Tag())
	}

	x, err := allocate[V](p.outShape, p.layout)
	if err != nil {
		return nil, nil, newError("x", ErrAllocation, "%v", err)
	}
	i, err := allocate[I](p.outShape, p.layout)
	if err != nil {
		return nil, nil, newError("i", ErrAllocation, "%v", err)
	}

	// Empty inputs may carry any kind; give the kernel views of the resolved one.
	x1, x2 := retype[V](args[0]), retype[V](args[1])
	i1, i2 := retype[I](args[2]), retype[I](args[3])

	in, out, err := kernel.Bind[V, I](x1, x2, i1, i2, x, i)
	if err != nil {
		return nil, nil, newError("", ErrUnsupportedType, "%v", err)
	}
	if err := op(in, out); err != nil {
		return nil, nil, &Error{
			Op:  "compute",
			Arg: "kernel",
			Err: fmt.Errorf("%w: %s/%s: %w", ErrKernel, p.entry.Name, p.entry.Variant, err),
		}
	}
	return x, i, nil
}

// allocate turns allocation panics (oversized make) into errors.
func allocate[T ndarray.Element](shape ndarray.Shape, layout ndarray.Layout) (a *ndarray.Array, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return ndarray.New[T](shape, layout)
}

func retype[T ndarray.Element](a *ndarray.Array) *ndarray.Array {
	if a.Kind() == ndarray.KindOf[T]() || !a.Empty() {
		return a
	}
	empty, err := ndarray.New[T](a.Shape(), ndarray.RowMajor)
	if err != nil {
		return a
	}
	return empty
}
