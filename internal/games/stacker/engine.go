package stacker

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tower/internal/config"
)

// MaxFrameDelta caps a single Tick so a stalled frame cannot teleport blocks.
const MaxFrameDelta = 250 * time.Millisecond

var (
	// ErrSessionActive is returned when a session is started while one is running.
	ErrSessionActive = errors.New("stacker: session already in progress")

	// ErrNoSession is returned by Restart when no session has been started.
	ErrNoSession = errors.New("stacker: no session to restart")

	// ErrUnknownDifficulty is returned for difficulties outside slow/medium/fast.
	ErrUnknownDifficulty = config.ErrUnknownDifficulty
)

// Phase is a state of the stacking state machine.
type Phase int

const (
	PhaseIdle      Phase = iota // In the menu, no session
	PhaseCountdown              // 3, 2, 1, GO
	PhaseSpawning               // Creating the next moving block
	PhaseSliding                // Moving block swings, placement accepted
	PhaseResolving              // Placement resolved, waiting for the settle delay
	PhaseWon                    // Goal reached
	PhaseLost                   // Missed the tower
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseSpawning:
		return "spawning"
	case PhaseSliding:
		return "sliding"
	case PhaseResolving:
		return "resolving"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Active reports whether a session is in progress.
func (p Phase) Active() bool {
	return p >= PhaseCountdown && p <= PhaseResolving
}

// Terminal reports whether the session has ended.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Option configures an Engine.
type Option func(*Engine)

// WithBestStore persists the best score through store.
func WithBestStore(store BestScoreStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithBestKey overrides the key used for best-score persistence.
func WithBestKey(key string) Option {
	return func(e *Engine) {
		e.bestKey = key
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed seeds the spawn-side RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithPlayfield overrides the configured playfield size.
func WithPlayfield(width, height float64) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
		if height > 0 {
			e.height = height
		}
	}
}

// Engine owns one player's tower, moving block, debris and score.
// It is not safe for concurrent use; the presentation layer drives it from a
// single goroutine and only reads it through Snapshot.
type Engine struct {
	cfg    config.StackerConfig
	curve  config.SpeedCurve
	width  float64
	height float64

	difficulty config.Difficulty
	phase      Phase

	tower  []Block
	moving *MovingBlock
	debris *DebrisField

	score        int
	best         int
	speedBase    float64
	speedCurrent float64
	cameraOffset float64

	countdownValue int
	countdown      schedule
	settle         schedule

	spawnCount int
	seed       int64
	rng        *rand.Rand

	store   BestScoreStore
	bestKey string
	logger  *log.Logger
	err     error
}

// NewEngine creates an idle engine. The best score is loaded from the store
// when one is configured.
func NewEngine(cfg config.StackerConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		curve:   cfg.Speed.Curve(),
		width:   cfg.Playfield.Width,
		height:  cfg.Playfield.Height,
		debris:  NewDebrisField(cfg.Debris),
		bestKey: BestScoreKey,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))

	if e.store != nil {
		best, err := e.store.LoadBest(e.bestKey)
		if err != nil {
			e.err = fmt.Errorf("stacker: load best score: %w", err)
			e.logger.Warn("could not load best score", "key", e.bestKey, "error", err)
		} else {
			e.best = best
		}
	}
	return e
}

// StartSession begins a new session at the given difficulty.
// The difficulty is fixed until the session ends.
func (e *Engine) StartSession(d config.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	if e.phase.Active() {
		return ErrSessionActive
	}
	e.difficulty = d
	e.begin()
	return nil
}

// Restart begins a fresh session with the current difficulty.
// Pending timers are cancelled first, so repeated calls are idempotent.
func (e *Engine) Restart() error {
	if e.phase == PhaseIdle {
		return ErrNoSession
	}
	e.begin()
	return nil
}

// ReturnToMenu abandons the session and returns to Idle.
func (e *Engine) ReturnToMenu() {
	e.reset()
	e.difficulty = ""
	e.setPhase(PhaseIdle)
}

// Resize changes the playfield bounds. The tower, moving block and debris
// scale horizontally with the width, so the stack keeps its shape and stays
// inside the new bounds. The moving block is re-clamped on the next tick.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if sx := width / e.width; sx != 1 {
		for i := range e.tower {
			e.tower[i] = e.tower[i].ScaleX(sx)
		}
		if e.moving != nil {
			e.moving.Block = e.moving.Block.ScaleX(sx)
		}
		e.debris.ScaleX(sx)
	}
	e.width = width
	e.height = height
}

// AttemptPlacement drops the moving block. It is honored only while Sliding
// and reports whether the input was consumed.
func (e *Engine) AttemptPlacement() bool {
	if e.phase != PhaseSliding || e.moving == nil {
		return false
	}
	e.setPhase(PhaseResolving)
	e.resolve()
	return true
}

// Tick advances timers, the moving block and debris by dt.
func (e *Engine) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	switch e.phase {
	case PhaseCountdown:
		e.tickCountdown(dt)
	case PhaseSliding:
		if e.moving != nil {
			m := Advance(*e.moving, e.width, dt, e.cfg.Speed.Edge)
			e.moving = &m
		}
		e.debris.Update(dt, e.height)
	case PhaseResolving:
		e.debris.Update(dt, e.height)
		if e.settle.advance(dt) > 0 {
			e.spawn()
		}
	}
}

// tickCountdown steps the countdown and starts play once "GO" has shown.
func (e *Engine) tickCountdown(dt time.Duration) {
	fired := e.countdown.advance(dt)
	for range fired {
		if e.countdownValue > 0 {
			e.countdownValue--
			continue
		}
		e.countdown.cancel()
		e.placeBase()
		e.spawn()
		return
	}
}

// begin resets all session state and enters Countdown.
func (e *Engine) begin() {
	e.reset()
	e.rng = rand.New(rand.NewSource(e.seed))
	e.speedBase = e.cfg.Speed.Base(e.difficulty)
	e.speedCurrent = e.speedBase
	e.countdownValue = e.cfg.Countdown.Steps
	e.countdown.start(e.cfg.Countdown.Interval, true)
	e.setPhase(PhaseCountdown)
}

// reset cancels timers and clears per-session state.
func (e *Engine) reset() {
	e.countdown.cancel()
	e.settle.cancel()
	e.tower = nil
	e.moving = nil
	e.debris.Clear()
	e.score = 0
	e.cameraOffset = 0
	e.spawnCount = 0
	e.countdownValue = 0
	e.err = nil
}

// placeBase puts the widest block at the bottom of the playfield.
func (e *Engine) placeBase() {
	h := e.cfg.Blocks.Height
	e.tower = append(e.tower[:0], Block{
		CenterX: e.width / 2,
		CenterY: e.height - h/2,
		Width:   e.width * e.cfg.Blocks.BaseWidthFraction,
		Height:  h,
	})
}

// spawn creates the next moving block above the top of the tower.
func (e *Engine) spawn() {
	e.setPhase(PhaseSpawning)
	top := e.top()

	m := MovingBlock{
		Block: Block{
			Width:   top.Width,
			Height:  top.Height,
			CenterY: top.CenterY - top.Height - e.cfg.Blocks.Gap,
		},
		Speed: e.speedCurrent,
	}
	if e.spawnSide() == SideLeft {
		m.CenterX = m.Width / 2
		m.Direction = 1
	} else {
		m.CenterX = e.width - m.Width/2
		m.Direction = -1
	}
	m = Bounce(m, e.width, e.cfg.Speed.Edge)
	e.spawnCount++
	e.moving = &m

	e.logger.Debug("spawned block", "width", m.Width, "speed", m.Speed, "direction", m.Direction)
	e.setPhase(PhaseSliding)
}

// spawnSide picks the edge the next block enters from.
func (e *Engine) spawnSide() Side {
	switch e.cfg.Spawn.Side {
	case config.SpawnRight:
		return SideRight
	case config.SpawnAlternate:
		if e.spawnCount%2 == 1 {
			return SideRight
		}
		return SideLeft
	case config.SpawnRandom:
		if e.rng.Intn(2) == 1 {
			return SideRight
		}
		return SideLeft
	default:
		return SideLeft
	}
}

// resolve trims the dropped block against the top of the tower.
func (e *Engine) resolve() {
	top := e.top()
	moving := *e.moving

	placed, offcuts, ok := Trim(moving.Block, top, e.cfg.Placement.MinOverlap)
	if !ok {
		e.logger.Debug("missed", "overlap", Overlap(moving.Block, top).Width, "min", e.cfg.Placement.MinOverlap)
		e.finish(PhaseLost)
		return
	}

	e.tower = append(e.tower, placed)
	e.score++
	e.moving = nil
	e.debris.Spawn(offcuts)
	e.speedCurrent = e.curve.Speed(e.speedBase, len(e.tower)-1)
	e.logger.Debug("placed block", "score", e.score, "width", placed.Width, "offcuts", len(offcuts))

	if goalY, ok := e.goalY(); ok && placed.Top() <= goalY+e.cfg.Goal.Tolerance.For(e.difficulty) {
		e.finish(PhaseWon)
		return
	}

	if e.cfg.Camera.Shift {
		e.shift(e.cfg.Blocks.Height + e.cfg.Blocks.Gap)
	}

	if e.cfg.Placement.SettleDelay <= 0 {
		e.spawn()
		return
	}
	e.settle.start(e.cfg.Placement.SettleDelay, false)
}

// shift moves the tower and debris down uniformly. Overlap math has already
// been done, and relative positions are preserved.
func (e *Engine) shift(dy float64) {
	for i := range e.tower {
		e.tower[i].CenterY += dy
	}
	e.debris.Shift(dy)
	e.cameraOffset += dy
}

// finish ends the session and records a new best score.
func (e *Engine) finish(p Phase) {
	e.countdown.cancel()
	e.settle.cancel()
	e.setPhase(p)

	if e.score <= e.best {
		return
	}
	e.best = e.score
	e.logger.Info("new best score", "score", e.best, "difficulty", e.difficulty)
	if e.store == nil {
		return
	}
	if err := e.store.SaveBest(e.bestKey, e.best); err != nil {
		e.err = fmt.Errorf("stacker: save best score: %w", err)
		e.logger.Warn("could not save best score", "key", e.bestKey, "error", err)
	}
}

// top returns the topmost tower block.
func (e *Engine) top() Block {
	if len(e.tower) == 0 {
		panic("stacker: tower is empty; the base must be placed before play")
	}
	return e.tower[len(e.tower)-1]
}

// goalY returns the goal line's y-coordinate when goal mode is enabled.
func (e *Engine) goalY() (float64, bool) {
	if e.cfg.Goal.Height == nil {
		return 0, false
	}
	return *e.cfg.Goal.Height, true
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase transition", "from", e.phase, "to", p)
	e.phase = p
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Difficulty returns the session difficulty, or "" when idle.
func (e *Engine) Difficulty() config.Difficulty {
	return e.difficulty
}

// Score returns the number of blocks placed this session.
func (e *Engine) Score() int {
	return e.score
}

// BestScore returns the best score, including the current session.
func (e *Engine) BestScore() int {
	return e.best
}

// Err returns the last best-score persistence error, if any.
func (e *Engine) Err() error {
	return e.err
}
