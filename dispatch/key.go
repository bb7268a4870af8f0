package dispatch

import "github.com/cwbudde/algo-dispatch/ndarray"

// Key identifies a call by element kinds and layouts. Only the kinds select
// the kernel instantiation.
type Key struct {
	Value       ndarray.Kind
	Index       ndarray.Kind
	ValueLayout ndarray.Layout
	IndexLayout ndarray.Layout
}

// Tag renders the canonical tag, e.g. "f64C_i32C". Strided layouts have no
// letter.
func (k Key) Tag() string {
	return k.Value.Short() + layoutLetter(k.ValueLayout) + "_" + k.Index.Short() + layoutLetter(k.IndexLayout)
}

func (k Key) String() string { return k.Tag() }

func layoutLetter(l ndarray.Layout) string {
	switch l {
	case ndarray.RowMajor:
		return "C"
	case ndarray.ColMajor:
		return "F"
	default:
		return ""
	}
}
