package stacker

import "github.com/vovakirdan/tui-tower/internal/config"

// Snapshot is a read-only copy of the engine state for rendering.
// Mutating it never affects the engine.
type Snapshot struct {
	Phase          Phase
	Tower          []Block
	Moving         *MovingBlock
	Debris         []Debris
	Score          int
	BestScore      int
	CountdownValue *int // Set only during Countdown; 0 means "GO"
	Difficulty     config.Difficulty
	Width          float64
	Height         float64
	GoalY          *float64 // Set only in goal mode
	Speed          float64
	CameraOffset   float64
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        e.phase,
		Tower:        make([]Block, len(e.tower)),
		Debris:       e.debris.Pieces(),
		Score:        e.score,
		BestScore:    e.best,
		Difficulty:   e.difficulty,
		Width:        e.width,
		Height:       e.height,
		Speed:        e.speedCurrent,
		CameraOffset: e.cameraOffset,
	}
	copy(s.Tower, e.tower)

	if e.moving != nil {
		m := *e.moving
		s.Moving = &m
	}
	if e.phase == PhaseCountdown {
		v := e.countdownValue
		s.CountdownValue = &v
	}
	if y, ok := e.goalY(); ok {
		s.GoalY = &y
	}
	return s
}

// Top returns the topmost tower block, if any.
func (s Snapshot) Top() (Block, bool) {
	if len(s.Tower) == 0 {
		return Block{}, false
	}
	return s.Tower[len(s.Tower)-1], true
}
