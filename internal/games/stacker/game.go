package stacker

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tower/internal/config"
	"github.com/vovakirdan/tui-tower/internal/core"
	"github.com/vovakirdan/tui-tower/internal/registry"
)

// Mode selects between the endless and the goal-line variant.
type Mode string

const (
	ModeEndless Mode = "endless"
	ModeGoal    Mode = "goal"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Minimum screen size the game can be drawn in.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Package-level settings applied to every new game, set by the CLI.
var (
	configPath string
	bestStore  BestScoreStore
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBestStore sets the store used to persist the best score.
// A nil store keeps the best score in memory for the game's lifetime.
func SetBestStore(store BestScoreStore) {
	bestStore = store
}

// SetLogger sets the logger handed to every engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the Engine to the game registry.
type Game struct {
	mode    Mode
	engine  *Engine
	cfg     config.StackerConfig
	runtime core.RuntimeConfig
	dt      time.Duration
	paused  bool
}

// New creates an endless tower game.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewGoal creates a tower game with a goal line.
func NewGoal() *Game {
	return &Game{mode: ModeGoal}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeGoal {
		return "tower_goal"
	}
	return "tower"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeGoal {
		return "Tower Stacker (Goal)"
	}
	return "Tower Stacker"
}

// Description returns the menu blurb for this mode.
func (g *Game) Description() string {
	if g.mode == ModeGoal {
		return "Reach the goal line before the tower runs out"
	}
	return "Stack as high as you can, the camera follows"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false

	rate := cfg.TickRate
	if rate <= 0 {
		rate = ReferenceRate
	}
	g.dt = time.Second / time.Duration(rate)

	sc, err := config.LoadStacker(configPath)
	if err != nil {
		logger.Warn("using default stacker config", "path", configPath, "error", err)
		sc = config.DefaultStackerConfig()
	}
	config.ApplyMode(&sc, g.mode == ModeGoal)
	g.cfg = sc

	d := config.DefaultDifficulty
	if cfg.Difficulty != "" {
		parsed, err := config.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			logger.Warn("unknown difficulty, using default", "difficulty", cfg.Difficulty, "default", d)
		} else {
			d = parsed
		}
	}

	opts := []Option{
		WithLogger(logger.With("game", g.ID())),
		WithSeed(cfg.Seed),
		WithPlayfield(g.playfieldWidth(), sc.Playfield.Height),
	}
	if bestStore != nil {
		opts = append(opts, WithBestStore(bestStore))
	}
	g.engine = NewEngine(sc, opts...)

	if err := g.engine.StartSession(d); err != nil {
		logger.Error("could not start session", "error", err)
	}
}

// Resize refits the playfield to a new screen size without restarting.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.runtime.ScreenW = cfg.ScreenW
	g.runtime.ScreenH = cfg.ScreenH
	if g.engine == nil {
		return
	}
	g.engine.Resize(g.playfieldWidth(), g.cfg.Playfield.Height)
}

// ReturnToMenu abandons the running session.
func (g *Game) ReturnToMenu() {
	if g.engine != nil {
		g.engine.ReturnToMenu()
	}
	g.paused = false
}

// playfieldWidth returns the world width for the current screen.
func (g *Game) playfieldWidth() float64 {
	if !g.cfg.Playfield.FitScreen {
		return g.cfg.Playfield.Width
	}
	return g.cfg.Playfield.FitWidth(g.runtime.ScreenW, g.runtime.ScreenH-hudRows)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	phase := g.engine.Phase()

	if in.Has(core.ActionRestart) && phase != PhaseIdle {
		//nolint:errcheck // Restart only fails in Idle, checked above
		g.engine.Restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && phase.Active() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPlace) || in.Has(core.ActionConfirm) {
		g.engine.AttemptPlacement()
	}
	g.engine.Tick(g.dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	phase := g.engine.Phase()
	return core.GameState{
		Score:     g.engine.Score(),
		BestScore: g.engine.BestScore(),
		GameOver:  phase.Terminal(),
		Won:       phase == PhaseWon,
		Paused:    g.paused,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
	_ registry.Leaver    = (*Game)(nil)
	_ registry.Describer = (*Game)(nil)
)

func init() {
	registry.Register("tower", func() registry.Game {
		return New()
	})
	registry.Register("tower_goal", func() registry.Game {
		return NewGoal()
	})
}
