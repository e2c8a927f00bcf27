package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadStacker loads the tower stacking configuration.
// Search order: customPath -> ~/.tower/configs/stacker.{yaml,toml} ->
// ./configs/stacker.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadStacker(customPath string) (StackerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{
		userConfigPath("stacker.yaml"),
		userConfigPath("stacker.toml"),
		filepath.Join("configs", "stacker.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultStackerConfig()
	if err := yaml.Unmarshal(defaultStackerYAML, &cfg); err != nil {
		return DefaultStackerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a config file on top of the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func loadFile(path string) (StackerConfig, error) {
	cfg := DefaultStackerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by path's extension.
func Decode(path string, data []byte, cfg *StackerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tower", "configs", filename)
}

// ApplyMode configures camera and goal line for one of the two game modes.
// Goal mode keeps a static camera and enables the goal line; endless mode
// raises the stack after each placement and has no goal.
func ApplyMode(cfg *StackerConfig, goal bool) {
	if goal {
		cfg.Camera.Shift = false
		if cfg.Goal.Height == nil {
			h := DefaultGoalHeight
			cfg.Goal.Height = &h
		}
		return
	}
	cfg.Camera.Shift = true
	cfg.Goal.Height = nil
}
