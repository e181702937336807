package grid

import (
	"fmt"
	"unsafe"
)

// Grid is a rectangular array of T addressed by (x, y).
//
// A Grid is a small descriptor over element storage holding the logical
// size and the row stride. Row y starts at element y*stride and
// holds width elements; when stride > width the remaining stride-width
// elements are padding that belongs to the buffer, not to the grid.
//
// Descriptors are values. Copying a Grid copies the descriptor, never the
// elements, and the shape of a descriptor never changes after construction.
// Only the elements it points to are mutated.
//
// How the storage is owned depends on the constructor:
//   - FromElements, FromElementsWithStride, StaticFilled: borrowed. The
//     caller (or the process) keeps the buffer alive.
//   - Allocate*, Duplicate*: owning. Return the buffer with Release.
//   - View, ViewOrEmpty, Pad, PadEx: aliasing. Valid only while the
//     parent's buffer is; writes through a view are visible in the parent.
//
// Grid performs no synchronization. Parents and views may be used from
// different goroutines only if their writes do not overlap or are
// synchronized by the caller.
type Grid[T any] struct {
	elems  []T
	width  int
	height int
	stride int
}

// Empty returns the canonical empty grid: zero size, zero stride and no
// backing elements. It is the zero value of Grid.
func Empty[T any]() Grid[T] {
	return Grid[T]{}
}

// Width returns the logical width in elements.
func (g Grid[T]) Width() int {
	return g.width
}

// Height returns the logical height in rows.
func (g Grid[T]) Height() int {
	return g.height
}

// Size returns (width, height).
func (g Grid[T]) Size() Size {
	return Size{X: g.width, Y: g.height}
}

// Stride returns the number of elements from the start of one row to the
// start of the next.
func (g Grid[T]) Stride() int {
	return g.stride
}

// StrideBytes returns the stride in bytes, for callers doing raw memory
// copies of the underlying buffer.
func (g Grid[T]) StrideBytes() int {
	var zero T
	return g.stride * int(unsafe.Sizeof(zero))
}

// Elements returns the underlying element slice, padding included.
// Element (x, y) is at index y*Stride()+x.
func (g Grid[T]) Elements() []T {
	return g.elems
}

// IsEmpty reports whether the grid covers no cells.
func (g Grid[T]) IsEmpty() bool {
	return g.width == 0 || g.height == 0
}

// IsCompact reports whether rows are tightly packed (stride == width).
// Compact grids are filled and copied as one contiguous run.
func (g Grid[T]) IsCompact() bool {
	return g.width == g.stride
}

// InBounds reports whether p addresses a cell of the grid.
func (g Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// offset maps an in-bounds position to its index in elems.
// It is the only place the addressing formula lives.
func (g Grid[T]) offset(p Point) int {
	return p.Y*g.stride + p.X
}

// At returns a pointer to the element at p.
// p must be in bounds; violating this panics with a *PreconditionError
// unless built with the gridunchecked tag.
func (g Grid[T]) At(p Point) *T {
	if checksEnabled && !g.InBounds(p) {
		violated("At", g.Size(), "position %v out of bounds", p)
	}
	return &g.elems[g.offset(p)]
}

// AtOrNil returns a pointer to the element at p, or nil if p is out of
// bounds.
func (g Grid[T]) AtOrNil(p Point) *T {
	if !g.InBounds(p) {
		return nil
	}
	return &g.elems[g.offset(p)]
}

// Get returns the element at p and true, or the zero value and false if p
// is out of bounds.
func (g Grid[T]) Get(p Point) (T, bool) {
	if e := g.AtOrNil(p); e != nil {
		return *e, true
	}
	var zero T
	return zero, false
}

// Row returns the width elements of row y. The slice aliases the grid and
// its capacity is limited to width, so appending never spills into padding.
// y must be in [0, Height()).
func (g Grid[T]) Row(y int) []T {
	if checksEnabled && (y < 0 || y >= g.height) {
		violated("Row", g.Size(), "row %d out of range [0, %d)", y, g.height)
	}
	return g.row(y)
}

// RowOrNil returns row y, or nil if y is out of range.
func (g Grid[T]) RowOrNil(y int) []T {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.row(y)
}

func (g Grid[T]) row(y int) []T {
	start := g.offset(Point{Y: y})
	return g.elems[start : start+g.width : start+g.width]
}

// String returns a short description of the descriptor, not its contents.
func (g Grid[T]) String() string {
	var zero T
	return fmt.Sprintf("Grid[%T]{%dx%d stride=%d}", zero, g.width, g.height, g.stride)
}
