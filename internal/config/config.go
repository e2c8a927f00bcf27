// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the tower platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid stacker config")

// Edge handling modes for the moving block.
const (
	EdgeClamp   = "clamp"   // Snap to the boundary and reverse
	EdgeReflect = "reflect" // Fold the overshoot back inside and reverse
)

// Spawn side policies for new moving blocks.
const (
	SpawnLeft      = "left"
	SpawnRight     = "right"
	SpawnAlternate = "alternate"
	SpawnRandom    = "random"
)

// StackerConfig contains all configuration for the tower stacking game.
type StackerConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Blocks    BlocksConfig    `yaml:"blocks" toml:"blocks"`
	Placement PlacementConfig `yaml:"placement" toml:"placement"`
	Countdown CountdownConfig `yaml:"countdown" toml:"countdown"`
	Speed     SpeedConfig     `yaml:"speed" toml:"speed"`
	Goal      GoalConfig      `yaml:"goal" toml:"goal"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Debris    DebrisConfig    `yaml:"debris" toml:"debris"`
	Spawn     SpawnConfig     `yaml:"spawn" toml:"spawn"`
}

// PlayfieldConfig defines the world-space size of the playfield.
type PlayfieldConfig struct {
	Width      float64 `yaml:"width" toml:"width"`             // Used when FitScreen is false
	Height     float64 `yaml:"height" toml:"height"`           // Always used
	FitScreen  bool    `yaml:"fit_screen" toml:"fit_screen"`   // Derive width from the terminal aspect ratio
	CellAspect float64 `yaml:"cell_aspect" toml:"cell_aspect"` // Terminal cell height / width
	MinWidth   float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth   float64 `yaml:"max_width" toml:"max_width"`
}

// BlocksConfig defines block geometry.
type BlocksConfig struct {
	Height            float64 `yaml:"height" toml:"height"`
	BaseWidthFraction float64 `yaml:"base_width_fraction" toml:"base_width_fraction"`
	Gap               float64 `yaml:"gap" toml:"gap"` // Vertical space between stacked blocks
}

// PlacementConfig defines the placement rules.
type PlacementConfig struct {
	MinOverlap  float64       `yaml:"min_overlap" toml:"min_overlap"`   // Overlap must be strictly greater
	SettleDelay time.Duration `yaml:"settle_delay" toml:"settle_delay"` // Pause before the next spawn
}

// CountdownConfig defines the pre-game countdown.
type CountdownConfig struct {
	Steps    int           `yaml:"steps" toml:"steps"`
	Interval time.Duration `yaml:"interval" toml:"interval"`
}

// SpeedConfig defines base speeds (px per reference tick) and progression.
type SpeedConfig struct {
	Slow     float64 `yaml:"slow" toml:"slow"`
	Medium   float64 `yaml:"medium" toml:"medium"`
	Fast     float64 `yaml:"fast" toml:"fast"`
	PerBlock float64 `yaml:"per_block" toml:"per_block"` // Added per placed block
	Max      float64 `yaml:"max" toml:"max"`             // Hard cap
	Edge     string  `yaml:"edge" toml:"edge"`           // "clamp" or "reflect"
}

// GoalConfig defines the optional goal line.
type GoalConfig struct {
	// Height is the goal line's distance from the playfield top.
	// nil disables the goal-line win.
	Height    *float64        `yaml:"height" toml:"height"`
	Tolerance ToleranceConfig `yaml:"tolerance" toml:"tolerance"`
}

// ToleranceConfig is the slack below the goal line that still counts as a win.
type ToleranceConfig struct {
	Slow   float64 `yaml:"slow" toml:"slow"`
	Medium float64 `yaml:"medium" toml:"medium"`
	Fast   float64 `yaml:"fast" toml:"fast"`
}

// CameraConfig controls the raise-the-stack camera transform.
type CameraConfig struct {
	Shift bool `yaml:"shift" toml:"shift"` // Shift the tower down after every placement
}

// DebrisConfig defines off-cut physics. Velocities are per reference tick.
type DebrisConfig struct {
	Enabled      bool          `yaml:"enabled" toml:"enabled"`
	Gravity      float64       `yaml:"gravity" toml:"gravity"`
	InitialVY    float64       `yaml:"initial_vy" toml:"initial_vy"`
	LateralSpeed float64       `yaml:"lateral_speed" toml:"lateral_speed"`
	AngularSpeed float64       `yaml:"angular_speed" toml:"angular_speed"`
	MaxLifetime  time.Duration `yaml:"max_lifetime" toml:"max_lifetime"`
}

// SpawnConfig defines where new moving blocks enter.
type SpawnConfig struct {
	Side string `yaml:"side" toml:"side"`
}

// GoalEnabled reports whether the goal-line win is active.
func (c StackerConfig) GoalEnabled() bool {
	return c.Goal.Height != nil
}

// FitWidth returns the playfield width for a terminal area of cols x rows
// cells, keeping world units square on screen.
func (p PlayfieldConfig) FitWidth(cols, rows int) float64 {
	if !p.FitScreen || cols <= 0 || rows <= 0 {
		return p.Width
	}
	aspect := p.CellAspect
	if aspect <= 0 {
		aspect = 2
	}
	w := p.Height * float64(cols) / (float64(rows) * aspect)
	if p.MinWidth > 0 && w < p.MinWidth {
		w = p.MinWidth
	}
	if p.MaxWidth > 0 && w > p.MaxWidth {
		w = p.MaxWidth
	}
	return w
}

// Validate checks that the configuration describes a playable game.
func (c StackerConfig) Validate() error {
	switch {
	case c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield.height must be positive", ErrInvalidConfig)
	case !c.Playfield.FitScreen && c.Playfield.Width <= 0:
		return fmt.Errorf("%w: playfield.width must be positive", ErrInvalidConfig)
	case c.Blocks.Height <= 0:
		return fmt.Errorf("%w: blocks.height must be positive", ErrInvalidConfig)
	case c.Blocks.Height >= c.Playfield.Height:
		return fmt.Errorf("%w: blocks.height must be smaller than playfield.height", ErrInvalidConfig)
	case c.Blocks.BaseWidthFraction <= 0 || c.Blocks.BaseWidthFraction > 1:
		return fmt.Errorf("%w: blocks.base_width_fraction must be in (0, 1]", ErrInvalidConfig)
	case c.Blocks.Gap < 0:
		return fmt.Errorf("%w: blocks.gap must not be negative", ErrInvalidConfig)
	case c.Placement.MinOverlap < 0:
		return fmt.Errorf("%w: placement.min_overlap must not be negative", ErrInvalidConfig)
	case c.Placement.SettleDelay < 0:
		return fmt.Errorf("%w: placement.settle_delay must not be negative", ErrInvalidConfig)
	case c.Countdown.Steps < 0:
		return fmt.Errorf("%w: countdown.steps must not be negative", ErrInvalidConfig)
	case c.Countdown.Interval <= 0:
		return fmt.Errorf("%w: countdown.interval must be positive", ErrInvalidConfig)
	case c.Speed.Slow <= 0 || c.Speed.Medium <= 0 || c.Speed.Fast <= 0:
		return fmt.Errorf("%w: speed.slow/medium/fast must be positive", ErrInvalidConfig)
	case c.Speed.PerBlock < 0:
		return fmt.Errorf("%w: speed.per_block must not be negative", ErrInvalidConfig)
	case c.Speed.Max < c.Speed.Fast:
		return fmt.Errorf("%w: speed.max must be at least speed.fast", ErrInvalidConfig)
	case c.Speed.Edge != EdgeClamp && c.Speed.Edge != EdgeReflect:
		return fmt.Errorf("%w: unknown speed.edge %q", ErrInvalidConfig, c.Speed.Edge)
	case c.Goal.Height != nil && (*c.Goal.Height < 0 || *c.Goal.Height >= c.Playfield.Height):
		return fmt.Errorf("%w: goal.height must be within the playfield", ErrInvalidConfig)
	case c.Debris.MaxLifetime < 0:
		return fmt.Errorf("%w: debris.max_lifetime must not be negative", ErrInvalidConfig)
	}

	switch c.Spawn.Side {
	case SpawnLeft, SpawnRight, SpawnAlternate, SpawnRandom:
	default:
		return fmt.Errorf("%w: unknown spawn.side %q", ErrInvalidConfig, c.Spawn.Side)
	}
	return nil
}
