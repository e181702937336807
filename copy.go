package grid

import "fmt"

// CopyInto copies the logical contents of src into dst row by row.
// The grids may have different strides; padding on either side is left
// untouched. dst and src must have the same size, otherwise ErrSizeMismatch
// is returned and dst is not modified.
//
// Overlapping grids (a view and its parent) are copied with the semantics
// of the built-in copy per row; rows are visited top to bottom.
func CopyInto[T any](dst, src Grid[T]) error {
	if dst.Size() != src.Size() {
		return fmt.Errorf("%w: dst %v, src %v", ErrSizeMismatch, dst.Size(), src.Size())
	}
	if dst.IsEmpty() {
		return nil
	}
	if dst.IsCompact() && src.IsCompact() {
		n := dst.width * dst.height
		copy(dst.elems[:n], src.elems[:n])
		return nil
	}
	for y := range dst.height {
		copy(dst.Row(y), src.Row(y))
	}
	return nil
}

// DuplicatePreservingStride returns an owning copy of g that keeps g's
// stride. The whole underlying buffer is copied, padding included, so the
// copy's padding holds whatever g's buffer held. For a view, only the
// elements the view can reach are copied and the rest of the last row's
// padding is left as returned by the allocator.
func DuplicatePreservingStride[T any](g Grid[T], a Allocator[T]) (Grid[T], error) {
	if g.IsEmpty() {
		return Empty[T](), nil
	}
	dup, err := AllocateWithStride(a, g.Size(), g.stride)
	if err != nil {
		return Grid[T]{}, err
	}
	copy(dup.elems, g.elems)
	Logger().Debug("grid: duplicated", "size", g.Size(), "stride", g.stride, "compact", false)
	return dup, nil
}

// DuplicateCompact returns an owning compact copy of g: exactly
// width*height elements with no padding, filled row by row.
func DuplicateCompact[T any](g Grid[T], a Allocator[T]) (Grid[T], error) {
	if g.IsEmpty() {
		return Empty[T](), nil
	}
	dup, err := Allocate(a, g.Size())
	if err != nil {
		return Grid[T]{}, err
	}
	_ = CopyInto(dup, g) // sizes are equal by construction
	Logger().Debug("grid: duplicated", "size", g.Size(), "stride", g.width, "compact", true)
	return dup, nil
}
