// Package grid provides a generic two-dimensional strided grid.
//
// # Overview
//
// A Grid[T] is a rectangular array of T addressed by (x, y), stored in a
// flat slice whose rows may be padded. It is the storage layer for
// bitmap-like data such as pixel buffers and tile maps. Views alias a
// sub-rectangle of another grid without copying, and a small set of
// rasterization primitives draws into a grid in place.
//
// # Quick Start
//
//	import "github.com/gogpu/grid"
//
//	g := grid.New[uint8](grid.Sz(32, 16))
//	g.Fill(0).
//		Border(1, 1).
//		DrawLine(grid.Pt(0, 0), grid.Pt(31, 15), 2).
//		FillEllipse(grid.Pt(8, 4), grid.Sz(16, 8), 3)
//
//	inner := g.Pad(grid.Sz(2, 2)) // 28x12 view sharing g's memory
//	inner.FillRect(grid.Pt(0, 0), grid.Sz(4, 4), 4)
//
// # Addressing
//
// Element (x, y) lives at index y*Stride()+x of Elements(). Width is the
// logical row length; Stride is the physical one and is never smaller.
// A grid with Stride() == Width() is compact.
//
// All bounds-sensitive operations come in two forms. The checked form (At,
// Row, View) panics with a *PreconditionError when its precondition does
// not hold; building with the gridunchecked tag removes those checks. The
// total form (AtOrNil, RowOrNil, ViewOrEmpty, Get) reports failure through
// its result instead.
//
// # Ownership
//
// Grids do not track ownership at run time. What a grid may do with its
// buffer follows from how it was built:
//
//   - FromElements, FromElementsWithStride: borrows a caller buffer.
//   - StaticFilled, New: garbage-collected storage, never released.
//   - Allocate*, Duplicate*: owns a buffer from an Allocator; call Release.
//   - View, ViewOrEmpty, Pad, PadEx: aliases the parent and is valid only
//     as long as the parent's buffer.
//
// # Drawing
//
// Drawing methods clip to the grid and never fail: Fill, Zero, Draw,
// DrawHLine, DrawVLine, DrawLine, DrawRect, FillRect, FillEllipse, Border,
// BorderEx. Each returns the grid so calls chain. Painter values package
// drawing operations for deferred or composite use (see Apply, InView).
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Related Packages
//
//   - alloc: Heap, Pool, Arena, Limited and Synchronized allocators
//   - gridimage: image.Image views, scaling, PNG/BMP/TIFF encoding
//   - gridtext: text rendering of rune grids
//   - tile: splitting grids into tiles and filling them in parallel
package grid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
