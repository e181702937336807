package grid

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Vec can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec is a 2D value with componentwise arithmetic.
// It is used both for positions, which may be negative, and for sizes.
type Vec[S Scalar] struct {
	X, Y S
}

// Point is a signed grid coordinate.
type Point = Vec[int]

// Size is a grid extent. Negative components are only meaningful for
// drawing operations, where they flip the shape's direction.
type Size = Vec[int]

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{X: w, Y: h}
}

// V is a convenience function to create a Vec of any scalar type.
func V[S Scalar](x, y S) Vec[S] {
	return Vec[S]{X: x, Y: y}
}

// Add returns the componentwise sum.
func (v Vec[S]) Add(w Vec[S]) Vec[S] {
	return Vec[S]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference.
func (v Vec[S]) Sub(w Vec[S]) Vec[S] {
	return Vec[S]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec[S]) Mul(s S) Vec[S] {
	return Vec[S]{X: v.X * s, Y: v.Y * s}
}

// Min returns the componentwise minimum.
func (v Vec[S]) Min(w Vec[S]) Vec[S] {
	return Vec[S]{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the componentwise maximum.
func (v Vec[S]) Max(w Vec[S]) Vec[S] {
	return Vec[S]{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// SatSub subtracts w componentwise, clamping each component at zero.
// This is the size arithmetic used by padding and borders: shrinking an
// extent never produces a negative extent.
func (v Vec[S]) SatSub(w Vec[S]) Vec[S] {
	return Vec[S]{X: satSub(v.X, w.X), Y: satSub(v.Y, w.Y)}
}

// Abs returns the vector with both components made non-negative.
func (v Vec[S]) Abs() Vec[S] {
	return Vec[S]{X: abs(v.X), Y: abs(v.Y)}
}

// IsZero reports whether either component is zero.
// For a size this means the extent covers no cells.
func (v Vec[S]) IsZero() bool {
	return v.X == 0 || v.Y == 0
}

// In reports whether v lies in the half-open box [0, size).
func (v Vec[S]) In(size Vec[S]) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < size.X && v.Y < size.Y
}

// Float converts an integer or float vector to float64 components.
func Float[S Scalar](v Vec[S]) Vec[float64] {
	return Vec[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// String returns a string representation of the vector.
func (v Vec[S]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

func satSub[S Scalar](a, b S) S {
	if a <= b {
		return 0
	}
	return a - b
}

// addSat returns a+b, clamped to the int range instead of wrapping.
func addSat(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}

// farCorner returns pos+size with each component clamped to the int range,
// so a shape far outside the grid stays outside after normalization.
func farCorner(pos Point, size Size) Point {
	return Point{X: addSat(pos.X, size.X), Y: addSat(pos.Y, size.Y)}
}

func abs[S Scalar](a S) S {
	if a < 0 {
		return -a
	}
	return a
}
