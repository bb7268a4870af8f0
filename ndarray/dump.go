package ndarray

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

// DumpOption configures Dump output.
type DumpOption func(*dumpOptions)

// DumpWithPrecision sets the number of decimal places for floating kinds.
// A negative value prints the shortest representation that round-trips.
func DumpWithPrecision(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.Precision = n
	}
}

// DumpWithThreshold sets the element count up to which every element is
// printed. Larger arrays only show EdgeItems at each end of every axis.
func DumpWithThreshold(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.Threshold = n
	}
}

// DumpWithEdgeItems sets the number of elements printed at each end of an axis
// when the array is summarised.
func DumpWithEdgeItems(n int) DumpOption {
	return func(opts *dumpOptions) {
		opts.EdgeItems = n
	}
}

type dumpOptions struct {
	Precision, Threshold, EdgeItems int
}

// Dump renders a in nested bracket notation, e.g. [[1, 2], [3, 4]].
func Dump(a *Array, optsFuncs ...DumpOption) string {
	opts := dumpOptions{Precision: -1, Threshold: 1000, EdgeItems: 3}
	for _, optsFunc := range optsFuncs {
		optsFunc(&opts)
	}

	if a.Len() <= opts.Threshold {
		opts.EdgeItems = math.MaxInt
	}

	formatFloat := func(bits int) func(float64) string {
		return func(f float64) string {
			if opts.Precision < 0 {
				return strconv.FormatFloat(f, 'g', -1, bits)
			}
			return strconv.FormatFloat(f, 'f', opts.Precision, bits)
		}
	}

	switch a.kind {
	case Float16:
		ff := formatFloat(32)
		return dump(a, opts.EdgeItems, func(h float16.Float16) string { return ff(float64(h.Float32())) })
	case Float32:
		ff := formatFloat(32)
		return dump(a, opts.EdgeItems, func(f float32) string { return ff(float64(f)) })
	case Float64:
		return dump(a, opts.EdgeItems, formatFloat(64))
	case Int32:
		return dump(a, opts.EdgeItems, func(i int32) string { return strconv.FormatInt(int64(i), 10) })
	case Int64:
		return dump(a, opts.EdgeItems, func(i int64) string { return strconv.FormatInt(i, 10) })
	default:
		return "<unsupported>"
	}
}

func dump[T Element](a *Array, items int, fn func(T) string) string {
	s, err := Values[T](a)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	shape := a.shape

	var sb strings.Builder
	var f func(dims Shape, start int)
	f = func(dims Shape, start int) {
		prefix := strings.Repeat(" ", len(shape)-len(dims)+1)
		sb.WriteString("[")
		defer sb.WriteString("]")
		inner := dims[1:].NumElements()
		for i := 0; i < dims[0]; i++ {
			if i >= items && i < dims[0]-items {
				sb.WriteString("...")
				if len(dims) > 1 {
					fmt.Fprint(&sb, ",", strings.Repeat("\n", len(dims)-1), prefix)
				} else {
					sb.WriteString(", ")
				}
				i = dims[0] - items - 1
				continue
			}
			if len(dims) > 1 {
				f(dims[1:], start+i*inner)
				if i < dims[0]-1 {
					fmt.Fprint(&sb, ",", strings.Repeat("\n", len(dims)-1), prefix)
				}
				continue
			}
			sb.WriteString(fn(s[start+i]))
			if i < dims[0]-1 {
				sb.WriteString(", ")
			}
		}
	}
	f(shape, 0)

	return sb.String()
}
