// Package geom provides the 2D primitives shared by recttree and spatree:
// points/vectors, sizes, and axis-aligned rectangles.
package geom

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Size is a 2D dimension (width, height).
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box with Min.X <= Max.X and
// Min.Y <= Max.Y. The coordinate system has its origin at the top-left,
// with Y increasing downward (matching willow's convention).
type Rect struct {
	Min, Max Vec2
}

// ZeroRect is the degenerate rectangle at the origin.
var ZeroRect = Rect{}

// NewRect builds a Rect from the four corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
}

// RectFromOrigin builds a Rect from a top-left corner and a size.
func RectFromOrigin(origin Vec2, size Size) Rect {
	return NewRect(origin.X, origin.Y, origin.X+size.Width, origin.Y+size.Height)
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

// Area returns the rectangle's area. Degenerate (zero-width or zero-height)
// rectangles have zero area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// IsZero reports whether the rectangle has zero area.
func (r Rect) IsZero() bool { return r.Area() == 0 }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether r and other share any area, including touching
// edges (adjacent rectangles are considered overlapping).
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Union returns the tightest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, other.Min.X), math.Min(r.Min.Y, other.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, other.Max.X), math.Max(r.Max.Y, other.Max.Y)},
	}
}
