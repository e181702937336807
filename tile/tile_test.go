package tile_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/tile"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name       string
		grid, tile grid.Size
		want       grid.Size
	}{
		{"exact", grid.Sz(128, 64), grid.Sz(64, 64), grid.Sz(2, 1)},
		{"partial", grid.Sz(130, 65), grid.Sz(64, 64), grid.Sz(3, 2)},
		{"smaller than tile", grid.Sz(10, 10), grid.Sz(64, 64), grid.Sz(1, 1)},
		{"empty grid", grid.Sz(0, 10), grid.Sz(4, 4), grid.Sz(0, 0)},
		{"zero tile", grid.Sz(10, 10), grid.Sz(0, 4), grid.Sz(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tile.Count(tt.grid, tt.tile))
		})
	}
}

func TestSplitCoversGridOnce(t *testing.T) {
	g, err := grid.FromElementsWithStride(make([]int, 13*7), grid.Sz(11, 7), 13)
	require.NoError(t, err)

	tiles := tile.Split(g, grid.Sz(4, 3))
	require.Len(t, tiles, 3*3)

	for _, tl := range tiles {
		for y := range tl.View.Height() {
			for x := range tl.View.Width() {
				*tl.View.At(grid.Pt(x, y))++
			}
		}
	}
	for y := range 7 {
		for x := range 11 {
			assert.Equal(t, 1, *g.At(grid.Pt(x, y)), "(%d,%d)", x, y)
		}
	}
	// Padding is never part of a tile.
	assert.Zero(t, g.Elements()[11])
	assert.Zero(t, g.Elements()[12])

	last := tiles[len(tiles)-1]
	assert.Equal(t, grid.Pt(2, 2), last.Index)
	assert.Equal(t, grid.Pt(8, 6), last.Origin)
	assert.Equal(t, grid.Sz(3, 1), last.View.Size())
}

func TestSplitEmpty(t *testing.T) {
	assert.Nil(t, tile.Split(grid.Empty[int](), grid.Sz(4, 4)))
	assert.Nil(t, tile.Split(grid.New[int](grid.Sz(4, 4)), grid.Sz(-1, 4)))
}

func TestForEachParallel(t *testing.T) {
	w := tile.NewWorkers(4)
	defer w.Close()
	assert.Equal(t, 4, w.Len())

	g := grid.New[uint16](grid.Sz(300, 200))
	var calls atomic.Int32
	tile.ForEach(w, g, grid.Sz(32, 32), func(tl tile.Tile[uint16]) {
		calls.Add(1)
		tl.View.Fill(uint16(tl.Index.Y*100 + tl.Index.X))
	})

	assert.Equal(t, int32(10*7), calls.Load())
	for y := 0; y < 200; y += 13 {
		for x := 0; x < 300; x += 17 {
			want := uint16((y/32)*100 + x/32)
			require.Equal(t, want, *g.At(grid.Pt(x, y)), "(%d,%d)", x, y)
		}
	}
}

func TestForEachSequential(t *testing.T) {
	g := grid.New[int](grid.Sz(5, 5))
	var order []grid.Point
	tile.ForEach(nil, g, grid.Sz(3, 3), func(tl tile.Tile[int]) {
		order = append(order, tl.Index)
	})
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, order)
}

func TestWorkersAfterClose(t *testing.T) {
	w := tile.NewWorkers(2)
	w.Close()
	w.Close()

	ran := 0
	w.Run([]func(){func() { ran++ }, func() { ran++ }})
	assert.Equal(t, 2, ran)
}

func TestWorkersRunDuringClose(t *testing.T) {
	for range 50 {
		w := tile.NewWorkers(4)

		var n atomic.Int32
		var callers sync.WaitGroup
		for range 8 {
			callers.Add(1)
			go func() {
				defer callers.Done()
				jobs := make([]func(), 64)
				for i := range jobs {
					jobs[i] = func() { n.Add(1) }
				}
				w.Run(jobs)
			}()
		}
		w.Close()

		finished := make(chan struct{})
		go func() {
			callers.Wait()
			close(finished)
		}()
		select {
		case <-finished:
		case <-time.After(10 * time.Second):
			t.Fatal("Run did not return after Close")
		}
		require.Equal(t, int32(8*64), n.Load())
	}
}

func TestWorkersDefault(t *testing.T) {
	w := tile.NewWorkers(0)
	defer w.Close()
	assert.Positive(t, w.Len())

	var n atomic.Int32
	jobs := make([]func(), 1000)
	for i := range jobs {
		jobs[i] = func() { n.Add(1) }
	}
	w.Run(jobs)
	assert.Equal(t, int32(1000), n.Load())
}

func TestChecker(t *testing.T) {
	g := grid.New[uint8](grid.Sz(6, 4))
	tile.Checker(g, grid.Sz(2, 2), 1)
	want := []uint8{
		1, 1, 0, 0, 1, 1,
		1, 1, 0, 0, 1, 1,
		0, 0, 1, 1, 0, 0,
		0, 0, 1, 1, 0, 0,
	}
	assert.Equal(t, want, g.Elements())
}

func BenchmarkForEach(b *testing.B) {
	w := tile.NewWorkers(0)
	defer w.Close()
	g := grid.New[uint32](grid.Sz(1920, 1080))
	b.ReportAllocs()
	for b.Loop() {
		tile.ForEach(w, g, tile.DefaultSize, func(t tile.Tile[uint32]) {
			t.View.Fill(0xFF00FF00)
		})
	}
}
