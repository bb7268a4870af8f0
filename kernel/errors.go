package kernel

import "errors"

var (
	// ErrUnknownKernel is returned by Lookup when no variant has the name.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrNoVariant is returned by Lookup when variants exist but none fits the
	// type pair and the CPU.
	ErrNoVariant = errors.New("kernel: no variant for type pair")

	// ErrInvalidEntry is returned by Register for incomplete or duplicate entries.
	ErrInvalidEntry = errors.New("kernel: invalid entry")
)
