package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration
type Config struct {
	// ArenaWidth is the playfield width in pixels
	ArenaWidth float64 `yaml:"arena_width"`

	// ArenaHeight is the playfield height in pixels
	ArenaHeight float64 `yaml:"arena_height"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// Seed for the simulation RNG; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// AllowMultiplePowerups keeps shield and multi-shot active together
	AllowMultiplePowerups bool `yaml:"allow_multiple_powerups"`

	// Endless skips the victory screen and advances levels automatically
	Endless bool `yaml:"endless"`

	// StartLevel is the level selected when a run begins
	StartLevel int `yaml:"start_level"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:   1280,
		ArenaHeight:  720,
		ScreenWidth:  1280,
		ScreenHeight: 720,
		StartLevel:   1,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Arena returns the playfield described by the config
func (c Config) Arena() Arena {
	return Arena{W: c.ArenaWidth, H: c.ArenaHeight}
}

// LoadConfig overlays a YAML file on DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ArenaWidth <= 0 || cfg.ArenaHeight <= 0 {
		return DefaultConfig(), fmt.Errorf("invalid arena size %.0fx%.0f", cfg.ArenaWidth, cfg.ArenaHeight)
	}
	if cfg.StartLevel < 1 || cfg.StartLevel > MaxLevels {
		cfg.StartLevel = 1
	}
	return cfg, nil
}
