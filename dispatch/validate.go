package dispatch

import (
	"errors"

	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

var argNames = [4]string{"x1", "x2", "i1", "i2"}

// plan is a validated call.
type plan struct {
	key      Key
	shape    ndarray.Shape
	entry    kernel.Entry
	outShape ndarray.Shape
	layout   ndarray.Layout
}

// validate runs every check in order and selects the kernel.
func validate(args [4]*ndarray.Array, cfg Config) (plan, error) {
	var p plan

	for n, a := range args {
		if a == nil {
			return p, newError(argNames[n], ErrInvalidArray, "nil array")
		}
		if a.Rank() == 0 {
			return p, newError(argNames[n], ErrInvalidArray, "rank 0")
		}
	}

	p.shape = args[0].Shape()
	for n, a := range args[1:] {
		if s := a.Shape(); !s.Equal(p.shape) {
			return p, newError(argNames[n+1], ErrShapeMismatch, "%v vs x1 %v", s, p.shape)
		}
	}

	// A malformed tag is reported after the layout checks, but a valid one
	// already names the kinds of empty inputs.
	tag, tagErr := ParseTag(cfg.Tag)
	hasTag := cfg.Tag != "" && tagErr == nil

	x1, x2, i1, i2 := args[0], args[1], args[2], args[3]
	valueDefault, indexDefault := ndarray.Float64, ndarray.Int64
	if hasTag {
		valueDefault, indexDefault = tag.Value, tag.Index
	}

	var err error
	if p.key.Value, err = pairKind(x1, x2, "x", isValueKind, valueDefault); err != nil {
		return p, err
	}
	if p.key.Index, err = pairKind(i1, i2, "i", isIndexKind, indexDefault); err != nil {
		return p, err
	}

	if !compatible(x1, x2) {
		return p, newError("x2", ErrLayoutConflict, "x1 is %s, x2 is %s", x1.Layout(), x2.Layout())
	}
	if !compatible(i1, i2) {
		return p, newError("i2", ErrLayoutConflict, "i1 is %s, i2 is %s", i1.Layout(), i2.Layout())
	}
	p.key.ValueLayout, p.key.IndexLayout = x1.Layout(), i1.Layout()

	if cfg.Tag != "" {
		if tagErr != nil {
			return p, newError("tag", ErrInvalidTag, "%q", cfg.Tag)
		}
		if err := tag.check(p.key, x1, i1); err != nil {
			return p, err
		}
	}

	if p.entry, err = lookup(cfg, p.key); err != nil {
		return p, err
	}

	p.outShape = p.entry.ResultShape(p.shape)
	size, err := p.outShape.Size()
	if err != nil {
		return p, newError("", ErrAllocation, "%v", err)
	}
	if cfg.MaxElements > 0 && size > cfg.MaxElements {
		return p, newError("", ErrAllocation, "result of %d elements exceeds limit %d", size, cfg.MaxElements)
	}

	p.layout = cfg.OutputLayout
	if cfg.PreserveLayout {
		if l := x1.Layout(); l == ndarray.RowMajor || l == ndarray.ColMajor {
			p.layout = l
		}
	}
	return p, nil
}

func isValueKind(k ndarray.Kind) bool { return k == ndarray.Float32 || k == ndarray.Float64 }

func isIndexKind(k ndarray.Kind) bool { return k == ndarray.Int32 || k == ndarray.Int64 }

// pairKind resolves the kind of a pair. Empty pairs are exempt from the kind
// checks and fall back to fallback unless they share a supported kind.
func pairKind(a, b *ndarray.Array, prefix string, supported func(ndarray.Kind) bool, fallback ndarray.Kind) (ndarray.Kind, error) {
	if a.Empty() {
		if a.Kind() == b.Kind() && supported(a.Kind()) {
			return a.Kind(), nil
		}
		return fallback, nil
	}
	if !supported(a.Kind()) {
		return ndarray.KindOther, newError(prefix+"1", ErrUnsupportedType, "%s", a.Kind())
	}
	if !supported(b.Kind()) {
		return ndarray.KindOther, newError(prefix+"2", ErrUnsupportedType, "%s", b.Kind())
	}
	if a.Kind() != b.Kind() {
		return ndarray.KindOther, newError(prefix+"2", ErrKindMismatch, "%s1 is %s, %s2 is %s", prefix, a.Kind(), prefix, b.Kind())
	}
	return a.Kind(), nil
}

// compatible reports whether two arrays share a contiguity class.
func compatible(a, b *ndarray.Array) bool {
	switch {
	case a.IsRowMajor() && b.IsRowMajor():
		return true
	case a.IsColMajor() && b.IsColMajor():
		return true
	}
	return a.HasLayout(ndarray.Strided) && b.HasLayout(ndarray.Strided)
}

func lookup(cfg Config, key Key) (kernel.Entry, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = kernel.Global
	}

	var (
		entry kernel.Entry
		err   error
	)
	if cfg.Variant != "" {
		entry, err = reg.LookupVariant(cfg.Kernel, cfg.Variant, key.Value, key.Index)
	} else {
		features := cpu.DetectFeatures()
		if cfg.ForceGeneric {
			features = features.Generic()
		}
		entry, err = reg.Lookup(cfg.Kernel, features, key.Value, key.Index)
	}

	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, kernel.ErrUnknownKernel):
		return entry, newError("kernel", ErrUnknownKernel, "%q", cfg.Kernel)
	default:
		return entry, newError("kernel", ErrUnsupportedType, "%v", err)
	}
}
