// Package config provides configuration loading and access for the packer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Packing   PackingConfig   `yaml:"packing"`
	Rings     RingsConfig     `yaml:"rings"`
	Noise     NoiseConfig     `yaml:"noise"`
	Capture   CaptureConfig   `yaml:"capture"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The canvas fills the window.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PackingConfig holds circle placement parameters.
type PackingConfig struct {
	MinRadius   float64 `yaml:"min_radius"`   // Seed radius for unbiased candidates
	MaxRadius   float64 `yaml:"max_radius"`   // Upper clamp on grown radius
	MaxCircles  int     `yaml:"max_circles"`  // Collection bound; placement stops here
	PointerRect float64 `yaml:"pointer_rect"` // Side of the sampling square around the pointer
	PointerSeed float64 `yaml:"pointer_seed"` // Seed radius for pointer-biased candidates
}

// RingsConfig holds nested-ring rendering parameters.
type RingsConfig struct {
	Gap float64 `yaml:"gap"` // Diameter decrement between consecutive rings
}

// NoiseConfig holds the noise field and cursor defaults.
type NoiseConfig struct {
	Position       float64 `yaml:"position"`        // Initial cursor position in noise space
	Step           float64 `yaml:"step"`            // Initial cursor step per rendered circle
	PositionAdjust float64 `yaml:"position_adjust"` // Keyboard increment for the start position
	StepAdjust     float64 `yaml:"step_adjust"`     // Keyboard increment for the step (floored at 0)
}

// CaptureConfig holds vector export settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"` // Output directory for SVG captures
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Ticks per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CanvasW float64 // Screen.Width as float64
	CanvasH float64 // Screen.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CanvasW = float64(c.Screen.Width)
	c.Derived.CanvasH = float64(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
