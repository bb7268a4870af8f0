package ndarray

import (
	"fmt"
	"strings"
)

// Layout is the memory order of an array's elements.
type Layout int

const (
	// RowMajor ("C"): the last dimension varies fastest.
	RowMajor Layout = iota
	// ColMajor ("F"): the first dimension varies fastest.
	ColMajor
	// Strided covers every other stride pattern.
	Strided
)

// String returns "C", "F" or "strided".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "C"
	case ColMajor:
		return "F"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}

// ParseLayout accepts "C"/"F" (numpy order letters) and the long names.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "row", "row-major", "rowmajor":
		return RowMajor, nil
	case "f", "col", "column-major", "colmajor":
		return ColMajor, nil
	case "strided":
		return Strided, nil
	}
	return Strided, fmt.Errorf("%w: unknown layout %q", ErrLayout, s)
}

// StridesFor returns element strides for a contiguous array of the given shape.
// Strided is treated as RowMajor.
func StridesFor(shape Shape, layout Layout) []int {
	strides := make([]int, len(shape))
	acc := 1
	if layout == ColMajor {
		for i := 0; i < len(shape); i++ {
			strides[i] = acc
			acc *= max(shape[i], 1)
		}
		return strides
	}
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= max(shape[i], 1)
	}
	return strides
}

// contiguous reports whether strides describe a dense buffer in layout order.
// Dimensions of extent 1 are ignored, as numpy does when setting its
// contiguity flags, so a 1-D array is both C and F contiguous.
func contiguous(shape Shape, strides []int, layout Layout) bool {
	if len(shape) != len(strides) {
		return false
	}
	if shape.Empty() {
		return true
	}
	want := 1
	check := func(i int) bool {
		if shape[i] == 1 {
			return true
		}
		if strides[i] != want {
			return false
		}
		want *= shape[i]
		return true
	}
	if layout == ColMajor {
		for i := 0; i < len(shape); i++ {
			if !check(i) {
				return false
			}
		}
		return true
	}
	for i := len(shape) - 1; i >= 0; i-- {
		if !check(i) {
			return false
		}
	}
	return true
}
