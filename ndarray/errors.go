package ndarray

import "errors"

var (
	ErrShape   = errors.New("ndarray: invalid shape")
	ErrBuffer  = errors.New("ndarray: buffer too small")
	ErrKind    = errors.New("ndarray: element kind mismatch")
	ErrStrides = errors.New("ndarray: invalid strides")
	ErrLayout  = errors.New("ndarray: invalid layout")
)
