package dispatch

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Tag is a parsed type tag: <value><layout?>_<index><layout?> with value in
// {f32, f64}, index in {i32, i64} and layout in {C, F}. A missing layout
// letter matches any layout.
type Tag struct {
	Value       ndarray.Kind
	Index       ndarray.Kind
	ValueLayout ndarray.Layout // meaningful when HasValueLayout
	IndexLayout ndarray.Layout // meaningful when HasIndexLayout

	HasValueLayout bool
	HasIndexLayout bool
}

// ParseTag parses s. Errors wrap ErrInvalidTag.
func ParseTag(s string) (Tag, error) {
	var t Tag
	valuePart, indexPart, ok := strings.Cut(s, "_")
	if !ok || strings.Contains(indexPart, "_") {
		return t, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}

	var err error
	if t.Value, t.ValueLayout, t.HasValueLayout, err = parseTagPart(valuePart); err != nil {
		return t, fmt.Errorf("%w: %q: %v", ErrInvalidTag, s, err)
	}
	if t.Index, t.IndexLayout, t.HasIndexLayout, err = parseTagPart(indexPart); err != nil {
		return t, fmt.Errorf("%w: %q: %v", ErrInvalidTag, s, err)
	}
	if t.Value != ndarray.Float32 && t.Value != ndarray.Float64 {
		return t, fmt.Errorf("%w: %q: value kind must be f32 or f64", ErrInvalidTag, s)
	}
	if t.Index != ndarray.Int32 && t.Index != ndarray.Int64 {
		return t, fmt.Errorf("%w: %q: index kind must be i32 or i64", ErrInvalidTag, s)
	}
	return t, nil
}

func parseTagPart(p string) (ndarray.Kind, ndarray.Layout, bool, error) {
	if len(p) == 4 {
		var layout ndarray.Layout
		switch p[3] {
		case 'C':
			layout = ndarray.RowMajor
		case 'F':
			layout = ndarray.ColMajor
		default:
			return ndarray.KindOther, 0, false, fmt.Errorf("layout letter %q", p[3])
		}
		k, err := tagKind(p[:3])
		return k, layout, true, err
	}
	k, err := tagKind(p)
	return k, 0, false, err
}

func tagKind(s string) (ndarray.Kind, error) {
	switch s {
	case "f32":
		return ndarray.Float32, nil
	case "f64":
		return ndarray.Float64, nil
	case "i32":
		return ndarray.Int32, nil
	case "i64":
		return ndarray.Int64, nil
	}
	return ndarray.KindOther, fmt.Errorf("kind %q", s)
}

// String renders t in tag syntax.
func (t Tag) String() string {
	s := t.Value.Short()
	if t.HasValueLayout {
		s += layoutLetter(t.ValueLayout)
	}
	s += "_" + t.Index.Short()
	if t.HasIndexLayout {
		s += layoutLetter(t.IndexLayout)
	}
	return s
}

// check reports how the detected arrays contradict t, or nil. x and i are the
// first array of each pair.
func (t Tag) check(key Key, x, i *ndarray.Array) error {
	if key.Value != t.Value {
		return newError("tag", ErrTagMismatch, "tag %s names %s values, arrays hold %s", t, t.Value, key.Value)
	}
	if key.Index != t.Index {
		return newError("tag", ErrTagMismatch, "tag %s names %s indices, arrays hold %s", t, t.Index, key.Index)
	}
	if t.HasValueLayout && !x.HasLayout(t.ValueLayout) {
		return newError("tag", ErrTagMismatch, "tag %s names %s values, arrays are %s", t, t.ValueLayout, x.Layout())
	}
	if t.HasIndexLayout && !i.HasLayout(t.IndexLayout) {
		return newError("tag", ErrTagMismatch, "tag %s names %s indices, arrays are %s", t, t.IndexLayout, i.Layout())
	}
	return nil
}
