// Package tile splits grids into rectangular tiles and processes them in
// parallel.
//
// Tiles are non-overlapping views of one parent grid, so each tile can be
// written by a different goroutine without synchronization:
//
//	w := tile.NewWorkers(0)
//	defer w.Close()
//	tile.ForEach(w, g, tile.DefaultSize, func(t tile.Tile[uint8]) {
//	    t.View.Fill(uint8(t.Index.X + t.Index.Y))
//	})
package tile

import "github.com/gogpu/grid"

// DefaultSize is the default tile size. 64x64 one-byte elements fit in L1
// cache with room to spare.
var DefaultSize = grid.Sz(64, 64)

// Tile is one rectangular piece of a split grid.
type Tile[T any] struct {
	// Index is the tile's column and row.
	Index grid.Point

	// Origin is the position of the tile's upper-left cell in the parent.
	Origin grid.Point

	// View aliases the tile's cells in the parent. Edge tiles are smaller
	// than the requested size when the parent is not evenly divisible.
	View grid.Grid[T]
}

// Count returns the number of tile columns and rows needed to cover a grid
// of the given size.
func Count(gridSize, tileSize grid.Size) grid.Size {
	if gridSize.IsZero() || tileSize.X <= 0 || tileSize.Y <= 0 {
		return grid.Size{}
	}
	return grid.Sz(
		(gridSize.X+tileSize.X-1)/tileSize.X,
		(gridSize.Y+tileSize.Y-1)/tileSize.Y,
	)
}

// Split divides g into tiles of at most size cells, in row-major order.
// An empty grid or a size with a non-positive component yields no tiles.
func Split[T any](g grid.Grid[T], size grid.Size) []Tile[T] {
	n := Count(g.Size(), size)
	if n.IsZero() {
		return nil
	}
	tiles := make([]Tile[T], 0, n.X*n.Y)
	for ty := range n.Y {
		for tx := range n.X {
			idx := grid.Pt(tx, ty)
			origin := grid.Pt(tx*size.X, ty*size.Y)
			extent := size.Min(g.Size().Sub(origin))
			tiles = append(tiles, Tile[T]{
				Index:  idx,
				Origin: origin,
				View:   g.View(origin, extent),
			})
		}
	}
	return tiles
}
