package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration written as a Go duration string ("200ms") in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Config is the user configuration stored in config.toml
type Config struct {
	// ItemWidth is the page width in cells; 0 uses the terminal width
	ItemWidth        int     `toml:"item_width"`
	ContentOffset    int     `toml:"content_offset"`
	CaptureThreshold float64 `toml:"capture_threshold"`
	DragThreshold    float64 `toml:"drag_threshold"`

	// VelocityScale converts drag speed in cells/ms into resolver units
	VelocityScale float64 `toml:"velocity_scale"`

	SettleGrace     Duration `toml:"settle_grace"`
	MinimumViewTime Duration `toml:"minimum_view_time"`
	CoveragePercent float64  `toml:"view_area_coverage_percent_threshold"`

	// NativeDriver animates scrolls with a spring; false jumps instantly
	NativeDriver bool `toml:"native_driver"`

	// Resume restores and records the last viewed item per deck
	Resume bool `toml:"resume"`

	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	view := carousel.DefaultViewabilityConfig()
	return &Config{
		CaptureThreshold: carousel.DefaultCaptureThreshold,
		VelocityScale:    8,
		SettleGrace:      Duration{carousel.DefaultSettleGrace},
		MinimumViewTime:  Duration{view.MinimumViewTime},
		CoveragePercent:  view.ViewAreaCoveragePercentThreshold,
		NativeDriver:     true,
		Resume:           true,
	}
}

// Load reads the config at path, filling unset values from Default.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path, creating parent directories
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects values the carousel cannot work with
func (c *Config) Validate() error {
	switch {
	case c.ItemWidth < 0:
		return errors.New("item_width must not be negative")
	case c.ContentOffset < 0:
		return errors.New("content_offset must not be negative")
	case c.CaptureThreshold < 0:
		return errors.New("capture_threshold must not be negative")
	case c.DragThreshold < 0:
		return errors.New("drag_threshold must not be negative")
	case c.VelocityScale <= 0:
		return errors.New("velocity_scale must be positive")
	case c.SettleGrace.Duration < 0:
		return errors.New("settle_grace must not be negative")
	case c.MinimumViewTime.Duration < 0:
		return errors.New("minimum_view_time must not be negative")
	case c.CoveragePercent <= 0 || c.CoveragePercent > 100:
		return errors.New("view_area_coverage_percent_threshold must be in (0, 100]")
	}
	return nil
}

// Viewability returns the host viewability settings
func (c *Config) Viewability() carousel.ViewabilityConfig {
	return carousel.ViewabilityConfig{
		MinimumViewTime:                  c.MinimumViewTime.Duration,
		ViewAreaCoveragePercentThreshold: c.CoveragePercent,
	}
}
