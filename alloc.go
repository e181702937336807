package grid

// Allocator provides element buffers for owning grids.
//
// Alloc returns a slice of exactly n elements or an error. The contents of
// a freshly allocated slice are unspecified: an allocator may hand back a
// recycled buffer. Free returns a buffer obtained from the same allocator.
//
// Implementations live in package alloc; any type with these two methods
// works.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(buf []T)
}

// heapAllocator is the allocator behind New. Buffers come from make and are
// left to the garbage collector.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Alloc(n int) ([]T, error) { return make([]T, n), nil }
func (heapAllocator[T]) Free([]T)                 {}
