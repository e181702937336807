package alloc

import (
	"fmt"
	"sync"
)

// Pool recycles buffers by length.
//
// Pool groups freed buffers by their element count, so a grid of a given
// size and stride gets back a buffer that was released by a grid of the
// same shape. This removes GC pressure for applications that allocate and
// release identically-sized grids every frame.
//
// Recycled buffers are handed out as they were freed. Use
// grid.AllocateZeroed when the previous contents must not leak through.
//
// All methods are safe for concurrent use.
type Pool[T any] struct {
	mu      sync.Mutex
	buckets map[int][][]T
	maxSize int // max buffers per bucket

	hits, misses int
}

// NewPool creates a pool that retains at most maxPerBucket buffers of each
// length. A maxPerBucket of 0 means unlimited.
func NewPool[T any](maxPerBucket int) *Pool[T] {
	return &Pool[T]{
		buckets: make(map[int][][]T),
		maxSize: maxPerBucket,
	}
}

// Alloc returns a recycled buffer of n elements if one is available, or a
// new one otherwise.
func (p *Pool[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.hits++
		p.mu.Unlock()
		return buf, nil
	}
	p.misses++
	p.mu.Unlock()

	return make([]T, n), nil
}

// Free keeps buf for reuse. If the bucket for its length is full, buf is
// dropped and left to the garbage collector.
func (p *Pool[T]) Free(buf []T) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Cached returns the number of buffers currently held for reuse.
func (p *Pool[T]) Cached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, b := range p.buckets {
		total += len(b)
	}
	return total
}

// Stats returns how many Alloc calls were served from the pool and how
// many needed a new buffer.
func (p *Pool[T]) Stats() (hits, misses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

// Drain drops every cached buffer.
func (p *Pool[T]) Drain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.buckets)
}
