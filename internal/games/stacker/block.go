// Package stacker implements the tower stacking game.
//
// A block swings horizontally above a growing tower. The player drops it,
// it is trimmed to the overlap with the block below, and the tower rises
// until the player misses (or, in goal mode, reaches the goal line).
//
// The Engine is a tick-driven state machine with no terminal dependency;
// Game adapts it to the game registry and renders it into a core.Screen.
package stacker

// Block is an axis-aligned rectangle described by its center.
// Y grows downward, matching screen coordinates.
type Block struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// ScaleX returns the block with its center and width multiplied by sx.
func (b Block) ScaleX(sx float64) Block {
	b.CenterX *= sx
	b.Width *= sx
	return b
}

// Left returns the x-coordinate of the left edge.
func (b Block) Left() float64 {
	return b.CenterX - b.Width/2
}

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 {
	return b.CenterX + b.Width/2
}

// Top returns the y-coordinate of the top edge.
func (b Block) Top() float64 {
	return b.CenterY - b.Height/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Block) Bottom() float64 {
	return b.CenterY + b.Height/2
}

// Span is the horizontal intersection of two blocks.
// Width may be zero or negative when the blocks do not overlap.
type Span struct {
	Left  float64
	Right float64
	Width float64
}

// Center returns the midpoint of the span.
func (s Span) Center() float64 {
	return s.Left + s.Width/2
}

// Hit reports whether the overlap is wide enough to keep stacking.
// The comparison is strict: an overlap equal to minOverlap is a miss.
func (s Span) Hit(minOverlap float64) bool {
	return s.Width > minOverlap
}

// Overlap computes the horizontal intersection of a and b.
func Overlap(a, b Block) Span {
	left := max(a.Left(), b.Left())
	right := min(a.Right(), b.Right())
	return Span{Left: left, Right: right, Width: right - left}
}
