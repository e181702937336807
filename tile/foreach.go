package tile

import "github.com/gogpu/grid"

// ForEach splits g into tiles of at most size cells and calls fn once per
// tile. With a nil w the tiles are visited in row-major order on the
// calling goroutine; otherwise they are processed by w and ForEach returns
// once every call has completed.
//
// fn must only write through the tile's view. Tiles do not overlap, so no
// further synchronization is needed for writes to g.
func ForEach[T any](w *Workers, g grid.Grid[T], size grid.Size, fn func(Tile[T])) {
	tiles := Split(g, size)
	if w == nil {
		for _, t := range tiles {
			fn(t)
		}
		return
	}

	jobs := make([]func(), len(tiles))
	for i, t := range tiles {
		jobs[i] = func() { fn(t) }
	}
	w.Run(jobs)
}

// Checker fills alternate tiles of g with v, starting with the tile at the
// upper-left corner, and leaves the others untouched.
func Checker[T any](g grid.Grid[T], size grid.Size, v T) grid.Grid[T] {
	ForEach(nil, g, size, func(t Tile[T]) {
		if (t.Index.X+t.Index.Y)%2 == 0 {
			t.View.Fill(v)
		}
	})
	return g
}
