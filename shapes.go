package grid

// DrawRect draws the outline of the rectangle with corner pos and signed
// extent size, using the same normalization as FillRect. The outline is
// one cell thick and lies inside the normalized rectangle. A rectangle with
// a zero component has no edges and draws nothing.
func (g Grid[T]) DrawRect(pos Point, size Size, v T) Grid[T] {
	if size.IsZero() {
		return g
	}
	far := farCorner(pos, size)
	start, end := pos.Min(far), pos.Max(far)

	g.fillBox(start, Point{X: end.X, Y: start.Y + 1}, v)
	g.fillBox(Point{X: start.X, Y: end.Y - 1}, end, v)
	g.fillBox(start, Point{X: start.X + 1, Y: end.Y}, v)
	g.fillBox(Point{X: end.X - 1, Y: start.Y}, end, v)
	return g
}

// FillEllipse fills the ellipse inscribed in the rectangle with corner pos
// and signed extent size. A cell is drawn when its center lies inside the
// ellipse, using the normalized test
//
//	((cx-ex)/rx)^2 + ((cy-ey)/ry)^2 <= 1
//
// where (ex, ey) is the box center and rx, ry are half the box extent.
// Equal extents give a filled circle. Only cells of the bounding box that
// fall inside the grid are visited.
func (g Grid[T]) FillEllipse(pos Point, size Size, v T) Grid[T] {
	if size.IsZero() {
		return g
	}
	far := farCorner(pos, size)
	box0, box1 := pos.Min(far), pos.Max(far)
	radius := Float(box1).Sub(Float(box0)).Mul(0.5)
	center := Float(box0).Add(radius)

	start, end, ok := g.clampBox(box0, box1)
	if !ok {
		return g
	}
	for y := start.Y; y < end.Y; y++ {
		dy := (float64(y) + 0.5 - center.Y) / radius.Y
		row := g.row(y)
		for x := start.X; x < end.X; x++ {
			dx := (float64(x) + 0.5 - center.X) / radius.X
			if dx*dx+dy*dy <= 1 {
				row[x] = v
			}
		}
	}
	return g
}

// Painter draws into a grid. It is the extension point for shapes and
// effects that are not methods of Grid: anything implementing Painter can
// be passed to Apply, and composite painters can be built from others.
type Painter[T any] interface {
	Paint(g Grid[T])
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc[T any] func(g Grid[T])

// Paint calls f(g).
func (f PainterFunc[T]) Paint(g Grid[T]) { f(g) }

// Apply runs the painters against g in order.
func (g Grid[T]) Apply(painters ...Painter[T]) Grid[T] {
	for _, p := range painters {
		p.Paint(g)
	}
	return g
}

// InView returns a painter that runs painters against the view of the
// target grid at p with the given size. If the region is not entirely
// inside the target, nothing is drawn.
func InView[T any](p Point, size Size, painters ...Painter[T]) Painter[T] {
	return PainterFunc[T](func(g Grid[T]) {
		g.ViewOrEmpty(p, size).Apply(painters...)
	})
}

// InPadding returns a painter that runs painters against
// PadEx(upperLeft, bottomRight) of the target grid.
func InPadding[T any](upperLeft, bottomRight Size, painters ...Painter[T]) Painter[T] {
	return PainterFunc[T](func(g Grid[T]) {
		g.PadEx(upperLeft, bottomRight).Apply(painters...)
	})
}

// Line returns a painter for DrawLine.
func Line[T any](from, to Point, v T) Painter[T] {
	return PainterFunc[T](func(g Grid[T]) { g.DrawLine(from, to, v) })
}

// Rect returns a painter for DrawRect, or FillRect when filled is true.
func Rect[T any](pos Point, size Size, v T, filled bool) Painter[T] {
	if filled {
		return PainterFunc[T](func(g Grid[T]) { g.FillRect(pos, size, v) })
	}
	return PainterFunc[T](func(g Grid[T]) { g.DrawRect(pos, size, v) })
}

// Ellipse returns a painter for FillEllipse.
func Ellipse[T any](pos Point, size Size, v T) Painter[T] {
	return PainterFunc[T](func(g Grid[T]) { g.FillEllipse(pos, size, v) })
}
