package alloc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/alloc"
)

var (
	_ grid.Allocator[int]   = alloc.Heap[int]{}
	_ grid.Allocator[uint8] = (*alloc.Limited[uint8])(nil)
	_ grid.Allocator[uint8] = (*alloc.Pool[uint8])(nil)
	_ grid.Allocator[uint8] = (*alloc.Arena[uint8])(nil)
	_ grid.Allocator[uint8] = (*alloc.Synchronized[uint8])(nil)
)

func TestHeap(t *testing.T) {
	var h alloc.Heap[int]
	buf, err := h.Alloc(10)
	require.NoError(t, err)
	assert.Len(t, buf, 10)

	_, err = h.Alloc(-1)
	assert.ErrorIs(t, err, alloc.ErrInvalidLength)

	g, err := grid.Allocate[int](h, grid.Sz(3, 3))
	require.NoError(t, err)
	g.Fill(4)
	grid.Release(g, h)
}

func TestLimited(t *testing.T) {
	l := alloc.NewLimited[uint8](nil, 90)
	assert.Equal(t, 90, l.Budget())

	a, err := grid.Allocate[uint8](l, grid.Sz(8, 8))
	require.NoError(t, err)
	assert.Equal(t, 64, l.InUse())

	_, err = grid.Allocate[uint8](l, grid.Sz(6, 6))
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrAllocation)
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.Equal(t, 64, l.InUse(), "failed request must not consume budget")

	grid.Release(a, l)
	assert.Zero(t, l.InUse())

	b, err := grid.Allocate[uint8](l, grid.Sz(6, 6))
	require.NoError(t, err)
	assert.Equal(t, 36, l.InUse())
	grid.Release(b, l)
}

func TestLimitedWrapsAllocatorErrors(t *testing.T) {
	inner := alloc.NewArena[int](16)
	inner.Release()
	l := alloc.NewLimited[int](inner, 1000)

	_, err := l.Alloc(4)
	assert.ErrorIs(t, err, alloc.ErrReleased)
	assert.Zero(t, l.InUse())
}

func TestSynchronizedConcurrent(t *testing.T) {
	s := alloc.NewSynchronized[int](alloc.NewLimited[int](nil, 1<<20))

	done := make(chan error)
	for i := range 8 {
		go func() {
			for range 50 {
				g, err := grid.AllocateZeroed[int](s, grid.Sz(4+i, 4))
				if err != nil {
					done <- err
					return
				}
				g.Fill(i)
				grid.Release(g, s)
			}
			done <- nil
		}()
	}
	for range 8 {
		require.NoError(t, <-done)
	}

	s.Do(func(a grid.Allocator[int]) {
		assert.Zero(t, a.(*alloc.Limited[int]).InUse())
	})
}

func TestInvalidLength(t *testing.T) {
	allocators := map[string]grid.Allocator[int]{
		"heap":    alloc.Heap[int]{},
		"limited": alloc.NewLimited[int](nil, 10),
		"pool":    alloc.NewPool[int](1),
		"arena":   alloc.NewArena[int](8),
	}
	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			_, err := a.Alloc(-3)
			if !errors.Is(err, alloc.ErrInvalidLength) {
				t.Errorf("Alloc(-3) error = %v, want ErrInvalidLength", err)
			}
		})
	}
}
