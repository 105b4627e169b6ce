// Package config loads and resolves render defaults: canvas size,
// supersample factor, shading config path, scheduler throttle bounds, and
// worker count, generalized from a BMD-item-render path configuration to
// this engine's render defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Config holds all configurable render defaults.
type Config struct {
	// Canvas
	Width  int `json:"width"`
	Height int `json:"height"`

	// Rendering
	Scale            float64 `json:"scale"`
	Supersample      float64 `json:"supersample"` // resolved and stored only; neither engine.Render nor cmd/voxelpreview applies it
	ShaderConfigPath string  `json:"shader_config_path"`

	// Scheduler (mirrors internal/scheduler's Options defaults)
	ThrottleRingSize int `json:"throttle_ring_size"`
	ThrottleMinMs    int `json:"throttle_min_ms"`
	ThrottleMaxMs    int `json:"throttle_max_ms"`

	// Export
	WebPQuality int `json:"webp_quality"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config. Fields absent from the
// file keep their zero values, to be filled in by Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Scale       float64
	Supersample float64
	Quality     int
	Workers     int
}

// Resolve fills in any empty fields with defaults, after applying any
// non-zero CLI flag overrides — the same "flags override file, then fall
// back to defaults" order as the teacher's Resolve.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = 256
	}
	if c.Scale <= 0 {
		c.Scale = 20
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ThrottleRingSize <= 0 {
		c.ThrottleRingSize = 16
	}
	if c.ThrottleMinMs <= 0 {
		c.ThrottleMinMs = 16
	}
	if c.ThrottleMaxMs <= 0 {
		c.ThrottleMaxMs = 250
	}
}

// ThrottleMin returns ThrottleMinMs as a time.Duration, for wiring directly
// into scheduler.Options.
func (c Config) ThrottleMin() time.Duration {
	return time.Duration(c.ThrottleMinMs) * time.Millisecond
}

// ThrottleMax returns ThrottleMaxMs as a time.Duration, for wiring directly
// into scheduler.Options.
func (c Config) ThrottleMax() time.Duration {
	return time.Duration(c.ThrottleMaxMs) * time.Millisecond
}
