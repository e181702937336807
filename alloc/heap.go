package alloc

import "fmt"

// Heap allocates with make. Free is a no-op; buffers are reclaimed by the
// garbage collector once unreachable. The zero value is ready to use and is
// safe for concurrent use.
type Heap[T any] struct{}

// Alloc returns a new zeroed slice of n elements.
func (Heap[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return make([]T, n), nil
}

// Free does nothing.
func (Heap[T]) Free([]T) {}
