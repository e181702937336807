package alloc

import (
	"sync"

	"github.com/gogpu/grid"
)

// Synchronized serializes Alloc and Free on a wrapped allocator with a
// mutex, making allocators such as Arena and Limited usable from several
// goroutines.
type Synchronized[T any] struct {
	mu sync.Mutex
	a  grid.Allocator[T]
}

// NewSynchronized wraps a.
func NewSynchronized[T any](a grid.Allocator[T]) *Synchronized[T] {
	return &Synchronized[T]{a: a}
}

// Alloc implements grid.Allocator.
func (s *Synchronized[T]) Alloc(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(n)
}

// Free implements grid.Allocator.
func (s *Synchronized[T]) Free(buf []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(buf)
}

// Do runs f with the lock held, for operations on the wrapped allocator
// beyond Alloc and Free, such as Arena.Reset:
//
//	s.Do(func(a grid.Allocator[T]) { a.(*alloc.Arena[T]).Reset() })
func (s *Synchronized[T]) Do(f func(a grid.Allocator[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.a)
}
