package alloc

import (
	"fmt"

	"github.com/gogpu/grid"
)

// DefaultChunkLen is the default number of elements per arena chunk.
const DefaultChunkLen = 1 << 16

// chunk is a single block of arena memory.
type chunk[T any] struct {
	buf    []T
	offset int // first free element
}

// Arena is a chunked bump allocator for T.
//
// Alloc carves buffers out of large chunks; Free does nothing. All buffers
// are reclaimed together by Reset, which keeps the chunks for reuse, or by
// Release, which drops them. A typical use is one arena per frame or
// request holding every scratch grid needed while serving it.
//
// Buffers are handed out as found: after Reset they hold whatever the
// previous generation wrote. Grids allocated before a Reset must not be
// used afterwards.
//
// Arena is not safe for concurrent use; wrap it in Synchronized if needed.
type Arena[T any] struct {
	chunks   []chunk[T]
	chunkLen int
	current  int
	released bool
}

// NewArena creates an arena whose chunks hold chunkLen elements. Requests
// larger than chunkLen get a chunk of their own. If chunkLen <= 0,
// DefaultChunkLen is used.
func NewArena[T any](chunkLen int) *Arena[T] {
	if chunkLen <= 0 {
		chunkLen = DefaultChunkLen
	}
	a := &Arena[T]{chunkLen: chunkLen}
	a.grow(chunkLen)
	return a
}

// Alloc returns n elements from the arena. The slice's capacity is limited
// to n so appending to it never spills into a neighbouring buffer.
func (a *Arena[T]) Alloc(n int) ([]T, error) {
	if a.released {
		return nil, ErrReleased
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if n == 0 {
		return []T{}, nil
	}

	// Fast path: room in the current chunk.
	c := &a.chunks[a.current]
	if c.offset+n <= len(c.buf) {
		return c.take(n), nil
	}
	return a.allocSlow(n), nil
}

// allocSlow moves to the next chunk with room for n elements, appending a
// new chunk when none of the remaining ones is large enough.
func (a *Arena[T]) allocSlow(n int) []T {
	for i := a.current + 1; i < len(a.chunks); i++ {
		if c := &a.chunks[i]; c.offset+n <= len(c.buf) {
			a.current = i
			return c.take(n)
		}
	}
	a.grow(n)
	return a.chunks[a.current].take(n)
}

func (c *chunk[T]) take(n int) []T {
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset]
}

// Free does nothing; arena memory is reclaimed by Reset or Release.
func (a *Arena[T]) Free([]T) {}

// Reset makes all chunks available again without freeing them. It returns
// ErrReleased if the arena has been released.
func (a *Arena[T]) Reset() error {
	if a.released {
		return ErrReleased
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
	return nil
}

// Release drops all chunks. Every later Alloc or Reset returns ErrReleased.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
	a.released = true
}

// grow appends a chunk of at least minLen elements and makes it current.
func (a *Arena[T]) grow(minLen int) {
	n := max(a.chunkLen, minLen)
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, n)})
	a.current = len(a.chunks) - 1
	grid.Logger().Debug("alloc: arena grew", "chunk", a.current, "elements", n)
}
