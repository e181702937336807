package alloc

import "errors"

var (
	// ErrOutOfMemory is returned by Limited when a request exceeds its budget.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrReleased is returned by an Arena after Release.
	ErrReleased = errors.New("alloc: arena released")

	// ErrInvalidLength is returned for negative element counts.
	ErrInvalidLength = errors.New("alloc: invalid length")
)
