// Package core provides fundamental types and utilities for the tower platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Viewport maps a continuous playfield onto a block of screen cells.
type Viewport struct {
	Area   Rect    // Screen cells the playfield is drawn into
	Width  float64 // Playfield width in world units
	Height float64 // Playfield height in world units
}

// NewViewport creates a viewport drawing a width x height playfield into area.
func NewViewport(area Rect, width, height float64) Viewport {
	return Viewport{Area: area, Width: width, Height: height}
}

// ScaleX returns screen columns per world unit.
func (v Viewport) ScaleX() float64 {
	if v.Width <= 0 {
		return 0
	}
	return float64(v.Area.W) / v.Width
}

// ScaleY returns screen rows per world unit.
func (v Viewport) ScaleY() float64 {
	if v.Height <= 0 {
		return 0
	}
	return float64(v.Area.H) / v.Height
}

// Col converts a world x coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	return v.Area.X + int(math.Floor(x*v.ScaleX()))
}

// Row converts a world y coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	return v.Area.Y + int(math.Floor(y*v.ScaleY()))
}

// Cells converts a world-space box to the screen cells it covers.
// Any non-empty box covers at least one cell so thin slivers stay visible.
func (v Viewport) Cells(left, top, right, bottom float64) Rect {
	if right <= left || bottom <= top {
		return Rect{}
	}
	x0 := int(math.Round(left * v.ScaleX()))
	x1 := int(math.Round(right * v.ScaleX()))
	y0 := int(math.Round(top * v.ScaleY()))
	y1 := int(math.Round(bottom * v.ScaleY()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0)
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
