package grid

import "errors"

// Common errors for grid construction and copying.
var (
	// ErrInvalidSize is returned when a requested size has a negative
	// component.
	ErrInvalidSize = errors.New("grid: invalid size")

	// ErrInvalidStride is returned when stride is less than width.
	ErrInvalidStride = errors.New("grid: stride too small for width")

	// ErrBufferSize is returned when a borrowed buffer does not hold exactly
	// stride*height elements.
	ErrBufferSize = errors.New("grid: buffer length does not match size")

	// ErrSizeMismatch is returned by CopyInto when the grids differ in size.
	ErrSizeMismatch = errors.New("grid: size mismatch")

	// ErrAllocation wraps any error reported by an Allocator.
	ErrAllocation = errors.New("grid: allocation failed")

	// ErrPrecondition is wrapped by every PreconditionError.
	ErrPrecondition = errors.New("grid: precondition violated")
)
