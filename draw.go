package grid

// Drawing operations clip silently to the grid and never fail. Each returns
// the receiver so calls can be chained:
//
//	g.Fill(0).DrawLine(grid.Pt(0, 0), grid.Pt(9, 9), 1).Border(1, 2)

// Fill sets every element of the grid to v. Padding is not touched.
func (g Grid[T]) Fill(v T) Grid[T] {
	if g.IsEmpty() {
		return g
	}
	if g.IsCompact() {
		fillSlice(g.elems[:g.width*g.height], v)
		return g
	}
	for y := range g.height {
		fillSlice(g.row(y), v)
	}
	return g
}

// Zero sets every element of the grid to the zero value of T.
func (g Grid[T]) Zero() Grid[T] {
	if g.IsEmpty() {
		return g
	}
	if g.IsCompact() {
		clear(g.elems[:g.width*g.height])
		return g
	}
	for y := range g.height {
		clear(g.row(y))
	}
	return g
}

// Draw sets the element at p to v. Out-of-bounds positions are ignored.
func (g Grid[T]) Draw(p Point, v T) Grid[T] {
	if e := g.AtOrNil(p); e != nil {
		*e = v
	}
	return g
}

// DrawUnsafe sets the element at p to v without a bounds check, for callers
// that have already established InBounds(p). An out-of-bounds p may write
// into padding or into another view's cells.
func (g Grid[T]) DrawUnsafe(p Point, v T) Grid[T] {
	g.elems[g.offset(p)] = v
	return g
}

// DrawHLine draws a horizontal run on row origin.Y covering
// [min(origin.X, origin.X+length), max(origin.X, origin.X+length)) clamped
// to the grid. The end at origin.X+length is exclusive, so a negative
// length draws leftwards ending just before origin. A zero length or a row
// outside the grid draws nothing.
func (g Grid[T]) DrawHLine(origin Point, length int, v T) Grid[T] {
	row := g.RowOrNil(origin.Y)
	if row == nil || length == 0 {
		return g
	}
	x0, x1 := span(origin.X, length, g.width)
	if x0 < x1 {
		fillSlice(row[x0:x1], v)
	}
	return g
}

// DrawVLine is DrawHLine along column origin.X.
func (g Grid[T]) DrawVLine(origin Point, length int, v T) Grid[T] {
	if origin.X < 0 || origin.X >= g.width || length == 0 {
		return g
	}
	y0, y1 := span(origin.Y, length, g.height)
	for y := y0; y < y1; y++ {
		*g.At(Point{X: origin.X, Y: y}) = v
	}
	return g
}

// DrawLine draws a line from 'from' to 'to', both inclusive, using the
// integer Bresenham algorithm. Each point goes through Draw, so the parts
// of the line outside the grid are skipped point by point.
func (g Grid[T]) DrawLine(from, to Point, v T) Grid[T] {
	d := to.Sub(from).Abs()
	dx, dy := d.X, -d.Y
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	err := dx + dy
	p := from
	for {
		g.Draw(p, v)
		if p == to {
			return g
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// FillRect fills the rectangle with corner pos and signed extent size.
// A negative component extends the rectangle left or up from pos, with pos
// itself excluded, mirroring DrawHLine. The rectangle is clamped to the
// grid and filled one row run at a time.
func (g Grid[T]) FillRect(pos Point, size Size, v T) Grid[T] {
	far := farCorner(pos, size)
	return g.fillBox(pos.Min(far), pos.Max(far), v)
}

// fillBox fills the half-open box [start, end) clamped to the grid.
func (g Grid[T]) fillBox(start, end Point, v T) Grid[T] {
	start, end, ok := g.clampBox(start, end)
	if !ok {
		return g
	}
	for y := start.Y; y < end.Y; y++ {
		fillSlice(g.row(y)[start.X:end.X], v)
	}
	return g
}

// clampBox intersects the half-open box [start, end) with the grid. ok is
// false when the intersection is empty.
func (g Grid[T]) clampBox(start, end Point) (Point, Point, bool) {
	start, end = start.Max(Point{}), end.Min(g.Size())
	return start, end, start.X < end.X && start.Y < end.Y
}

// span normalizes [origin, origin+length) and clamps it to [0, limit).
func span(origin, length, limit int) (lo, hi int) {
	lo, hi = origin, addSat(origin, length)
	if lo > hi {
		lo, hi = hi, lo
	}
	return max(lo, 0), min(hi, limit)
}

// fillSlice sets every element of s to v, doubling the filled prefix with
// copy so long runs are written with memmove rather than one store at a
// time.
func fillSlice[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for n := 1; n < len(s); n *= 2 {
		copy(s[n:], s[:n])
	}
}
