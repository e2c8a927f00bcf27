package stacker

// Side identifies which end of the moving block an off-cut came from.
type Side int

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

// Offcut is a remainder of the moving block that falls outside the overlap.
type Offcut struct {
	Block
	Side Side
}

// Trim cuts the moving block to its overlap with top.
// ok is false when the overlap is not strictly wider than minOverlap; in that
// case placed and offcuts are zero. Otherwise placed keeps the moving block's
// vertical position and offcuts holds 0, 1 or 2 remainders.
func Trim(moving, top Block, minOverlap float64) (placed Block, offcuts []Offcut, ok bool) {
	span := Overlap(moving, top)
	if !span.Hit(minOverlap) {
		return Block{}, nil, false
	}

	placed = Block{
		CenterX: span.Center(),
		CenterY: moving.CenterY,
		Width:   span.Width,
		Height:  moving.Height,
	}
	return placed, Remainders(moving, span), true
}

// Remainders returns the parts of moving outside span.
func Remainders(moving Block, span Span) []Offcut {
	var out []Offcut

	if w := span.Left - moving.Left(); w > 0 {
		out = append(out, Offcut{
			Block: Block{
				CenterX: moving.Left() + w/2,
				CenterY: moving.CenterY,
				Width:   w,
				Height:  moving.Height,
			},
			Side: SideLeft,
		})
	}
	if w := moving.Right() - span.Right; w > 0 {
		out = append(out, Offcut{
			Block: Block{
				CenterX: span.Right + w/2,
				CenterY: moving.CenterY,
				Width:   w,
				Height:  moving.Height,
			},
			Side: SideRight,
		})
	}
	return out
}
