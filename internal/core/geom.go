// Package core provides fundamental types and utilities shared by the
// renderer and the simulation. It has no external dependencies so game
// logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in surface coordinates.
// Colliders are Rects; so are clip regions.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlap1D reports whether the closed ranges [a0,a1] and [b0,b1] share a point.
// Touching endpoints count as overlapping.
func Overlap1D(a0, a1, b0, b1 int) bool {
	return Max(a0, b0) <= Min(a1, b1)
}

// Overlaps reports whether two colliders overlap on both axes.
// Edges are inclusive: rectangles that merely touch are overlapping.
func (r Rect) Overlaps(other Rect) bool {
	return Overlap1D(r.X, r.Right(), other.X, other.Right()) &&
		Overlap1D(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// Intersect returns the part of r that lies inside other.
// The result is empty (W or H zero) when they do not intersect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := Max(r.X, other.X)
	y0 := Max(r.Y, other.Y)
	x1 := Min(r.Right(), other.Right())
	y1 := Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
