package grid

// Border fills a frame of the given thickness along all four edges.
func (g Grid[T]) Border(thickness int, v T) Grid[T] {
	t := Size{X: thickness, Y: thickness}
	return g.BorderEx(t, t, v)
}

// BorderEx fills a frame whose left and top edges are upperLeft.X and
// upperLeft.Y cells thick and whose right and bottom edges are
// bottomRight.X and bottomRight.Y cells thick. Thicknesses larger than the
// grid fill it completely; negative thicknesses are treated as zero.
func (g Grid[T]) BorderEx(upperLeft, bottomRight Size, v T) Grid[T] {
	ul := upperLeft.Max(Size{})
	br := bottomRight.Max(Size{})
	size := g.Size()
	far := size.SatSub(br)

	g.FillRect(Point{}, Size{X: size.X, Y: ul.Y}, v)
	g.FillRect(Point{Y: far.Y}, Size{X: size.X, Y: br.Y}, v)
	g.FillRect(Point{}, Size{X: ul.X, Y: size.Y}, v)
	g.FillRect(Point{X: far.X}, Size{X: br.X, Y: size.Y}, v)
	return g
}
