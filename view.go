package grid

// View returns a grid aliasing the size-sized region of g whose upper-left
// corner is p. The view shares g's stride and memory: writes through either
// are visible through both, and the view is only valid while g's buffer is.
//
// Both dimensions of size must be positive and the region must lie entirely
// inside g; otherwise View panics with a *PreconditionError (unless built
// with gridunchecked). Use ViewOrEmpty for a total variant.
func (g Grid[T]) View(p Point, size Size) Grid[T] {
	if checksEnabled && !g.canView(p, size) {
		violated("View", g.Size(), "region at %v of size %v not inside grid", p, size)
	}
	return g.view(p, size)
}

// ViewOrEmpty is View, but returns the empty grid instead of panicking when
// size has a non-positive component or the region is not entirely inside g.
// Views are never clamped: the result is either the full region or empty.
func (g Grid[T]) ViewOrEmpty(p Point, size Size) Grid[T] {
	if !g.canView(p, size) {
		return Empty[T]()
	}
	return g.view(p, size)
}

// Pad returns a view with offset removed from every side:
// PadEx(offset, offset).
func (g Grid[T]) Pad(offset Size) Grid[T] {
	return g.PadEx(offset, offset)
}

// PadEx returns a view with upperLeft removed from the left and top edges
// and bottomRight removed from the right and bottom edges. The remaining
// size is computed with saturating subtraction; if nothing remains the
// empty grid is returned. Negative offsets are treated as zero.
func (g Grid[T]) PadEx(upperLeft, bottomRight Size) Grid[T] {
	upperLeft = upperLeft.Max(Size{})
	bottomRight = bottomRight.Max(Size{})
	size := g.Size().SatSub(upperLeft).SatSub(bottomRight)
	return g.ViewOrEmpty(upperLeft, size)
}

func (g Grid[T]) canView(p Point, size Size) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	last := farCorner(p, size).Sub(Point{X: 1, Y: 1})
	return g.InBounds(p) && g.InBounds(last)
}

// view slices the parent's buffer from the origin cell through the last
// cell of the region. The last row is not followed by padding, so the
// slice is (height-1)*stride+width long rather than height*stride.
func (g Grid[T]) view(p Point, size Size) Grid[T] {
	start := g.offset(p)
	end := start + (size.Y-1)*g.stride + size.X
	return Grid[T]{
		elems:  g.elems[start:end:end],
		width:  size.X,
		height: size.Y,
		stride: g.stride,
	}
}
