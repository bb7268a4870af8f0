package ndarray

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is the extent of every dimension, outermost first.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the product of the dimensions. It does not check for
// overflow; use Size when the shape comes from an untrusted source.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Size returns the product of the dimensions, failing on overflow.
func (s Shape) Size() (int, error) {
	n := 1
	for _, d := range s {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension %d in %v", ErrShape, d, s)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: element count of %v overflows int", ErrShape, s)
		}
		n *= d
	}
	return n, nil
}

// Validate checks rank >= 1, non-negative dimensions and a representable size.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", ErrShape)
	}
	_, err := s.Size()
	return err
}

// Empty reports whether the shape has a zero dimension.
func (s Shape) Empty() bool {
	for _, d := range s {
		if d == 0 {
			return true
		}
	}
	return false
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// String formats the shape like a Python tuple: (2, 3).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
