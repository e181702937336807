package alloc

import (
	"fmt"

	"github.com/gogpu/grid"
)

// Limited wraps an allocator with a budget counted in elements. A request
// that would take the outstanding total above the budget fails with
// ErrOutOfMemory without reaching the wrapped allocator.
//
// Limited is not safe for concurrent use; wrap it in Synchronized if needed.
type Limited[T any] struct {
	next   grid.Allocator[T]
	budget int
	inUse  int
}

// NewLimited returns an allocator that serves at most budget outstanding
// elements from next. A nil next means Heap.
func NewLimited[T any](next grid.Allocator[T], budget int) *Limited[T] {
	if next == nil {
		next = Heap[T]{}
	}
	return &Limited[T]{next: next, budget: budget}
}

// Alloc implements grid.Allocator.
func (l *Limited[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if l.inUse+n > l.budget {
		return nil, fmt.Errorf("%w: %d elements requested, %d of %d in use",
			ErrOutOfMemory, n, l.inUse, l.budget)
	}
	buf, err := l.next.Alloc(n)
	if err != nil {
		return nil, err
	}
	l.inUse += len(buf)
	return buf, nil
}

// Free returns buf's elements to the budget and hands buf to the wrapped
// allocator.
func (l *Limited[T]) Free(buf []T) {
	l.inUse = max(l.inUse-len(buf), 0)
	l.next.Free(buf)
}

// InUse returns the number of outstanding elements.
func (l *Limited[T]) InUse() int {
	return l.inUse
}

// Budget returns the configured element budget.
func (l *Limited[T]) Budget() int {
	return l.budget
}
