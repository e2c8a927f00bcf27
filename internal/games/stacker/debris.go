package stacker

import (
	"time"

	"github.com/vovakirdan/tui-tower/internal/config"
)

// Debris is a falling off-cut. It never affects score or outcome.
type Debris struct {
	Block
	VelocityX       float64 // Units per reference tick
	VelocityY       float64 // Units per reference tick, positive = down
	Rotation        float64 // Radians
	AngularVelocity float64 // Radians per reference tick
	Age             time.Duration
}

// NewDebris launches an off-cut away from the tower.
func NewDebris(o Offcut, cfg config.DebrisConfig) Debris {
	dir := float64(o.Side)
	return Debris{
		Block:           o.Block,
		VelocityX:       dir * cfg.LateralSpeed,
		VelocityY:       cfg.InitialVY,
		AngularVelocity: dir * cfg.AngularSpeed,
	}
}

// DebrisField owns all live debris pieces.
type DebrisField struct {
	pieces []Debris
	cfg    config.DebrisConfig
}

// NewDebrisField creates an empty field using the given physics.
func NewDebrisField(cfg config.DebrisConfig) *DebrisField {
	return &DebrisField{
		pieces: make([]Debris, 0, 8),
		cfg:    cfg,
	}
}

// Spawn adds one piece per off-cut. Does nothing when debris is disabled.
func (f *DebrisField) Spawn(offcuts []Offcut) {
	if !f.cfg.Enabled {
		return
	}
	for _, o := range offcuts {
		f.pieces = append(f.pieces, NewDebris(o, f.cfg))
	}
}

// Update integrates every piece by dt and drops pieces that fell below
// floorY or outlived MaxLifetime.
func (f *DebrisField) Update(dt time.Duration, floorY float64) {
	n := ticks(dt)

	alive := f.pieces[:0]
	for _, p := range f.pieces {
		p.VelocityY += f.cfg.Gravity * n
		p.CenterX += p.VelocityX * n
		p.CenterY += p.VelocityY * n
		p.Rotation += p.AngularVelocity * n
		p.Age += dt

		// Use the larger dimension so a rotated piece is fully gone.
		reach := max(p.Width, p.Height) / 2
		if p.CenterY-reach > floorY {
			continue
		}
		if f.cfg.MaxLifetime > 0 && p.Age >= f.cfg.MaxLifetime {
			continue
		}
		alive = append(alive, p)
	}
	f.pieces = alive
}

// Shift moves every piece down by dy as part of the camera transform.
func (f *DebrisField) Shift(dy float64) {
	for i := range f.pieces {
		f.pieces[i].CenterY += dy
	}
}

// ScaleX stretches every piece horizontally by sx.
func (f *DebrisField) ScaleX(sx float64) {
	for i := range f.pieces {
		f.pieces[i].Block = f.pieces[i].Block.ScaleX(sx)
		f.pieces[i].VelocityX *= sx
	}
}

// Clear removes all pieces.
func (f *DebrisField) Clear() {
	f.pieces = f.pieces[:0]
}

// Len returns the number of live pieces.
func (f *DebrisField) Len() int {
	return len(f.pieces)
}

// Pieces returns a copy of the live pieces.
func (f *DebrisField) Pieces() []Debris {
	out := make([]Debris, len(f.pieces))
	copy(out, f.pieces)
	return out
}
