// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Bounds is a real-valued axis-aligned box in playfield coordinates.
// Left/Top are inclusive, Right/Bottom exclusive.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// BoundsOf builds a box from its top-left corner and size.
func BoundsOf(x, y, w, h float64) Bounds {
	return Bounds{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom-Top.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Intersects returns true if the boxes overlap with positive area.
// Touching edges do not count as overlap.
func (b Bounds) Intersects(other Bounds) bool {
	if b.Left >= other.Right || other.Left >= b.Right {
		return false
	}
	if b.Top >= other.Bottom || other.Top >= b.Bottom {
		return false
	}
	return true
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
