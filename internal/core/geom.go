// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Vec2 is a 2D vector in playfield units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is a continuous axis-aligned bounding box stored as center and size.
type Box struct {
	C    Vec2    // Center
	W, H float64 // Full width and height
}

// NewBox creates a box centered at (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{C: Vec2{X: cx, Y: cy}, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.C.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.C.X + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.C.Y - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.C.Y + b.H/2 }

// Move shifts the box by (dx, dy).
func (b *Box) Move(dx, dy float64) {
	b.C.X += dx
	b.C.Y += dy
}

// SetLeft moves the box horizontally so its left edge sits at x.
func (b *Box) SetLeft(x float64) { b.C.X = x + b.W/2 }

// SetRight moves the box horizontally so its right edge sits at x.
func (b *Box) SetRight(x float64) { b.C.X = x - b.W/2 }

// SetTop moves the box vertically so its top edge sits at y.
func (b *Box) SetTop(y float64) { b.C.Y = y + b.H/2 }

// SetBottom moves the box vertically so its bottom edge sits at y.
func (b *Box) SetBottom(y float64) { b.C.Y = y - b.H/2 }

// Intersects returns true if the two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Top() >= o.Bottom() || o.Top() >= b.Bottom() {
		return false
	}
	return true
}

// InBounds reports, per axis, whether the box lies fully inside a playfield
// of the given size anchored at the origin.
func InBounds(b Box, width, height float64) (horizontal, vertical bool) {
	horizontal = b.Left() >= 0 && b.Right() <= width
	vertical = b.Top() >= 0 && b.Bottom() <= height
	return horizontal, vertical
}

// FallbackDirection is returned by DirectionTo when the centers coincide.
var FallbackDirection = Vec2{X: 0, Y: 1}

// DirectionTo returns the unit vector from the center of from to the center
// of to. Coincident centers yield FallbackDirection.
func DirectionTo(from, to Box) Vec2 {
	d := to.C.Sub(from.C)
	norm := d.Len()
	if norm == 0 {
		return FallbackDirection
	}
	return d.Scale(1 / norm)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
