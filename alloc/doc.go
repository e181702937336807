// Package alloc provides grid.Allocator implementations.
//
// The allocators cover the usual buffer policies for owning grids:
//
//   - Heap hands out make'd slices and leaves them to the garbage collector.
//   - Pool recycles buffers of identical length, which suits frame or tile
//     buffers that are created and released repeatedly.
//   - Arena bump-allocates from large typed chunks and frees everything at
//     once with Reset.
//   - Limited enforces an element budget on top of another allocator.
//   - Synchronized serializes access to an allocator that is not safe for
//     concurrent use.
//
// Buffers returned by Alloc have unspecified contents unless documented
// otherwise; use grid.AllocateZeroed when zeroed memory is required.
package alloc
