package stacker

import (
	"time"

	"github.com/vovakirdan/tui-tower/internal/config"
)

// ReferenceRate is the tick rate speeds are expressed against.
const ReferenceRate = 60

// referenceTick is the duration of one reference tick.
const referenceTick = time.Second / ReferenceRate

// MovingBlock is the block currently swinging above the tower.
type MovingBlock struct {
	Block
	Direction int     // -1 = moving left, +1 = moving right
	Speed     float64 // Units per reference tick
}

// ticks converts a wall-clock delta to reference ticks.
func ticks(dt time.Duration) float64 {
	return float64(dt) / float64(referenceTick)
}

// Advance moves the block by one frame and bounces it off the playfield edges.
// The returned block always lies within [0, width] unless it is wider than
// the playfield, in which case it is centered.
func Advance(m MovingBlock, width float64, dt time.Duration, edge string) MovingBlock {
	if m.Direction == 0 {
		m.Direction = 1
	}
	m.CenterX += float64(m.Direction) * m.Speed * ticks(dt)
	return Bounce(m, width, edge)
}

// Bounce keeps the block inside [0, width], reversing direction when an edge
// is touched or crossed.
func Bounce(m MovingBlock, width float64, edge string) MovingBlock {
	half := m.Width / 2
	if m.Width >= width {
		m.CenterX = width / 2
		return m
	}

	minX, maxX := half, width-half
	switch {
	case m.CenterX <= minX:
		over := minX - m.CenterX
		m.CenterX = minX
		if edge == config.EdgeReflect {
			m.CenterX = min(minX+over, maxX)
		}
		m.Direction = 1
	case m.CenterX >= maxX:
		over := m.CenterX - maxX
		m.CenterX = maxX
		if edge == config.EdgeReflect {
			m.CenterX = max(maxX-over, minX)
		}
		m.Direction = -1
	}
	return m
}
