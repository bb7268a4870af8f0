package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch   = errors.New("dispatch: shape mismatch")
	ErrUnsupportedType = errors.New("dispatch: unsupported element type")
	ErrLayoutConflict  = errors.New("dispatch: layout conflict")
	ErrTagMismatch     = errors.New("dispatch: tag mismatch")
	ErrAllocation      = errors.New("dispatch: output allocation failed")
	ErrUnknownKernel   = errors.New("dispatch: unknown kernel")
	ErrKernel          = errors.New("dispatch: kernel failed")

	// ErrInvalidArray marks a nil or rank-0 argument.
	ErrInvalidArray = fmt.Errorf("%w: invalid array", ErrShapeMismatch)

	// ErrKindMismatch marks a pair whose arrays have different kinds.
	ErrKindMismatch = fmt.Errorf("%w: kinds differ within pair", ErrUnsupportedType)

	// ErrInvalidTag marks a tag that does not follow the tag grammar.
	ErrInvalidTag = fmt.Errorf("%w: malformed tag", ErrTagMismatch)
)

// Error describes a failed Compute call.
type Error struct {
	Op     string // "compute"
	Arg    string // offending argument ("x2", "tag", "kernel"), may be empty
	Err    error  // one of the package sentinels
	Detail string
}

func (e *Error) Error() string {
	s := e.Op
	if e.Arg != "" {
		s += " " + e.Arg
	}
	s += ": " + e.Err.Error()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func newError(arg string, err error, format string, args ...any) *Error {
	return &Error{Op: "compute", Arg: arg, Err: err, Detail: fmt.Sprintf(format, args...)}
}
