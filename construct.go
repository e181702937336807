package grid

import (
	"fmt"
	"math"
)

// FromElements describes buf as a compact grid of the given size.
// len(buf) must equal size.X*size.Y. The grid borrows buf: the caller keeps
// ownership and must keep it alive for as long as the grid is used.
//
// A zero-area size with an empty buffer yields the empty grid.
func FromElements[T any](buf []T, size Size) (Grid[T], error) {
	return FromElementsWithStride(buf, size, size.X)
}

// FromElementsWithStride describes buf as a grid whose rows are stride
// elements apart. stride must be at least size.X and len(buf) must equal
// stride*size.Y, which lets a grid describe a sub-rectangle of padded
// external memory without going through a view.
func FromElementsWithStride[T any](buf []T, size Size, stride int) (Grid[T], error) {
	if err := validateShape(size, stride); err != nil {
		return Grid[T]{}, err
	}
	if size.IsZero() {
		if len(buf) != 0 {
			return Grid[T]{}, fmt.Errorf("%w: %d elements for empty %v", ErrBufferSize, len(buf), size)
		}
		return Empty[T](), nil
	}
	if want := stride * size.Y; len(buf) != want {
		return Grid[T]{}, fmt.Errorf("%w: got %d elements, want %d for %v stride %d",
			ErrBufferSize, len(buf), want, size, stride)
	}
	return Grid[T]{elems: buf, width: size.X, height: size.Y, stride: stride}, nil
}

// StaticFilled returns a grid on storage that lives for the rest of the
// process, with every element set to fill. It is meant for package-level
// grids such as lookup masks and sprites:
//
//	var cursor = grid.StaticFilled(grid.Sz(8, 8), uint8(0))
//
// The grid is borrowed from the process and must never be Released.
// A size with a zero component yields the empty grid. A negative size, or
// one whose area overflows int, is a precondition violation.
func StaticFilled[T any](size Size, fill T) Grid[T] {
	if err := validateShape(size, size.X); err != nil {
		if checksEnabled {
			violated("StaticFilled", size, "%v", err)
		}
		return Empty[T]()
	}
	if size.IsZero() {
		return Empty[T]()
	}
	buf := make([]T, size.X*size.Y)
	g := Grid[T]{elems: buf, width: size.X, height: size.Y, stride: size.X}
	return g.Fill(fill)
}

// New returns a zeroed compact grid backed by the garbage-collected heap.
// There is nothing to release. A size with a zero component yields the
// empty grid. A negative size, or one whose area overflows int, is a
// precondition violation.
func New[T any](size Size) Grid[T] {
	g, err := AllocateZeroed[T](heapAllocator[T]{}, size)
	if err != nil {
		if checksEnabled {
			violated("New", size, "%v", err)
		}
		return Empty[T]()
	}
	return g
}

// Allocate returns an owning compact grid whose buffer comes from a.
// Element contents are whatever a returns. Release the grid with the same
// allocator when done.
func Allocate[T any](a Allocator[T], size Size) (Grid[T], error) {
	return AllocateWithStride(a, size, size.X)
}

// AllocateWithStride is Allocate with explicit row padding: the buffer
// holds stride*size.Y elements.
func AllocateWithStride[T any](a Allocator[T], size Size, stride int) (Grid[T], error) {
	if err := validateShape(size, stride); err != nil {
		return Grid[T]{}, err
	}
	if size.IsZero() {
		return Empty[T](), nil
	}
	n := stride * size.Y
	buf, err := a.Alloc(n)
	if err != nil {
		Logger().Warn("grid: allocation failed", "size", size, "stride", stride, "err", err)
		return Grid[T]{}, fmt.Errorf("%w: %v stride %d: %w", ErrAllocation, size, stride, err)
	}
	if len(buf) != n {
		return Grid[T]{}, fmt.Errorf("%w: allocator returned %d elements, want %d", ErrAllocation, len(buf), n)
	}
	Logger().Debug("grid: allocated", "size", size, "stride", stride, "elements", n)
	return Grid[T]{elems: buf, width: size.X, height: size.Y, stride: stride}, nil
}

// AllocateZeroed is Allocate followed by setting every element, padding
// included, to the zero value of T.
func AllocateZeroed[T any](a Allocator[T], size Size) (Grid[T], error) {
	return AllocateZeroedWithStride(a, size, size.X)
}

// AllocateZeroedWithStride is AllocateWithStride followed by zeroing the
// whole buffer.
func AllocateZeroedWithStride[T any](a Allocator[T], size Size, stride int) (Grid[T], error) {
	g, err := AllocateWithStride(a, size, stride)
	if err != nil {
		return g, err
	}
	clear(g.elems)
	return g, nil
}

// Release returns an owning grid's buffer to the allocator that produced
// it. g must come from Allocate* or Duplicate* with the same a. Releasing a
// borrowed grid or a view, or using g or any of its views afterwards, is a
// contract violation with unspecified results.
func Release[T any](g Grid[T], a Allocator[T]) {
	if g.elems == nil {
		return
	}
	if checksEnabled && len(g.elems) != g.stride*g.height {
		violated("Release", g.Size(), "buffer of %d elements is not an owning %d-stride buffer",
			len(g.elems), g.stride)
	}
	Logger().Debug("grid: released", "size", g.Size(), "stride", g.stride)
	a.Free(g.elems)
}

func validateShape(size Size, stride int) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if stride < size.X {
		return fmt.Errorf("%w: stride %d < width %d", ErrInvalidStride, stride, size.X)
	}
	if size.Y > 0 && stride > math.MaxInt/size.Y {
		return fmt.Errorf("%w: %v stride %d overflows int", ErrInvalidSize, size, stride)
	}
	return nil
}
