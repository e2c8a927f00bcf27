package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// DefaultGoalHeight is the goal line used by goal mode when none is configured.
const DefaultGoalHeight = 120.0

// DefaultStackerConfig returns the default tower stacking configuration.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Playfield: PlayfieldConfig{
			Width:      400,
			Height:     600,
			FitScreen:  true,
			CellAspect: 2,
			MinWidth:   240,
			MaxWidth:   900,
		},
		Blocks: BlocksConfig{
			Height:            25,
			BaseWidthFraction: 0.6,
			Gap:               4,
		},
		Placement: PlacementConfig{
			MinOverlap:  10,
			SettleDelay: 200 * time.Millisecond,
		},
		Countdown: CountdownConfig{
			Steps:    3,
			Interval: time.Second,
		},
		Speed: SpeedConfig{
			Slow:     2.0, // 120 px/s at 60 ticks/s
			Medium:   3.0, // 180 px/s
			Fast:     4.2, // 250 px/s
			PerBlock: 0.08,
			Max:      8.0,
			Edge:     EdgeClamp,
		},
		Goal: GoalConfig{
			Height: nil,
			Tolerance: ToleranceConfig{
				Slow:   12,
				Medium: 6,
				Fast:   0,
			},
		},
		Camera: CameraConfig{
			Shift: true,
		},
		Debris: DebrisConfig{
			Enabled:      true,
			Gravity:      0.35,
			InitialVY:    1.0,
			LateralSpeed: 1.5,
			AngularSpeed: 0.08,
			MaxLifetime:  3 * time.Second,
		},
		Spawn: SpawnConfig{
			Side: SpawnAlternate,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tower", "tower_goal":
		return defaultStackerYAML
	default:
		return nil
	}
}
