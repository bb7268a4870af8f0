package ndarray

import (
	"fmt"
	"strings"

	"github.com/x448/float16"
)

// Kind is the runtime element type of an Array.
type Kind int

const (
	KindOther Kind = iota
	Float16
	Float32
	Float64
	Int32
	Int64
)

// Float is the set of value element types accepted by kernels.
type Float interface {
	float32 | float64
}

// Index is the set of index element types accepted by kernels.
type Index interface {
	int32 | int64
}

// Element is every type an Array can store.
type Element interface {
	float16.Float16 | float32 | float64 | int32 | int64
}

// String returns the numpy style name of the kind.
func (k Kind) String() string {
	switch k {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "other"
	}
}

// Short returns the abbreviation used in dispatch tags, e.g. "f64".
func (k Kind) Short() string {
	switch k {
	case Float16:
		return "f16"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	default:
		return "?"
	}
}

// Size returns the element size in bytes, or 0 for KindOther.
func (k Kind) Size() int {
	switch k {
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		return 0
	}
}

func (k Kind) IsFloat() bool {
	return k == Float16 || k == Float32 || k == Float64
}

func (k Kind) IsInteger() bool {
	return k == Int32 || k == Int64
}

// ParseKind accepts both long ("float32") and short ("f32") names.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float16", "f16", "half":
		return Float16, nil
	case "float32", "f32":
		return Float32, nil
	case "float64", "f64", "double":
		return Float64, nil
	case "int32", "i32":
		return Int32, nil
	case "int64", "i64":
		return Int64, nil
	}
	return KindOther, fmt.Errorf("%w: unknown element kind %q", ErrKind, s)
}

// KindOf returns the Kind stored for T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	}
	return KindOther
}
