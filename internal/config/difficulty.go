package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not recognized.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty selects the base swing speed and goal tolerance for a session.
type Difficulty string

const (
	DifficultySlow   Difficulty = "slow"
	DifficultyMedium Difficulty = "medium"
	DifficultyFast   Difficulty = "fast"
)

// DefaultDifficulty is used when the player has not picked one.
const DefaultDifficulty = DifficultyMedium

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultySlow, DifficultyMedium, DifficultyFast}
}

// ParseDifficulty converts a CLI/menu string to a Difficulty.
// The names easy/normal/hard are accepted as aliases.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow", "easy":
		return DifficultySlow, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "fast", "hard":
		return DifficultyFast, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultySlow, DifficultyMedium, DifficultyFast:
		return true
	}
	return false
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultySlow:
		return "Slow"
	case DifficultyMedium:
		return "Medium"
	case DifficultyFast:
		return "Fast"
	default:
		return string(d)
	}
}

// Base returns the base swing speed for a difficulty.
func (s SpeedConfig) Base(d Difficulty) float64 {
	switch d {
	case DifficultySlow:
		return s.Slow
	case DifficultyFast:
		return s.Fast
	default:
		return s.Medium
	}
}

// Curve returns the speed progression described by this config.
func (s SpeedConfig) Curve() SpeedCurve {
	return SpeedCurve{PerBlock: s.PerBlock, Max: s.Max}
}

// For returns the goal tolerance for a difficulty.
func (t ToleranceConfig) For(d Difficulty) float64 {
	switch d {
	case DifficultySlow:
		return t.Slow
	case DifficultyFast:
		return t.Fast
	default:
		return t.Medium
	}
}

// SpeedCurve calculates the current swing speed from tower height.
type SpeedCurve struct {
	PerBlock float64
	Max      float64
}

// Speed returns min(Max, base + towerHeight*PerBlock).
// towerHeight counts placed blocks above the base; negative values count as 0.
func (c SpeedCurve) Speed(base float64, towerHeight int) float64 {
	if towerHeight < 0 {
		towerHeight = 0
	}
	speed := base + float64(towerHeight)*c.PerBlock
	if c.Max > 0 {
		speed = math.Min(speed, c.Max)
	}
	return speed
}
