// Package config provides configuration loading and access for the demo.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/wave/mesh"
	"github.com/pthm-cable/wave/shading"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Wave      WaveConfig      `yaml:"wave"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	HUD       HUDConfig       `yaml:"hud"`
	Log       LogConfig       `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"` // 0 = uncapped
	VSync     bool   `yaml:"vsync"`
	MSAA      bool   `yaml:"msaa"`
}

// WaveConfig selects the shading variant and grid resolution.
type WaveConfig struct {
	Variant  string  `yaml:"variant"`
	Rows     int     `yaml:"rows"`    // 0 = variant preset
	Columns  int     `yaml:"columns"` // 0 = variant preset
	TimeStep float64 `yaml:"time_step"`
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds between stat log lines
	FrameWindow int     `yaml:"frame_window"` // frames in the rolling window
	LogStats    bool    `yaml:"log_stats"`
}

// HUDConfig toggles the on-screen status bar.
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Variant    shading.Variant
	TimeStep32 float32
	LogLevel   slog.Level
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetVariant switches the shading variant and re-derives dependent values.
// Grid dimensions left at zero follow the new variant's preset.
func (c *Config) SetVariant(name string) error {
	c.Wave.Variant = name
	return c.computeDerived()
}

// GridSize returns the grid rows and columns, falling back to the variant preset.
func (c *Config) GridSize() (rows, columns int) {
	rows, columns = c.Derived.Variant.Preset()
	if c.Wave.Rows > 0 {
		rows = c.Wave.Rows
	}
	if c.Wave.Columns > 0 {
		columns = c.Wave.Columns
	}
	return rows, columns
}

// computeDerived validates the loaded config and fills derived values.
func (c *Config) computeDerived() error {
	v, err := shading.ParseVariant(c.Wave.Variant)
	if err != nil {
		return fmt.Errorf("wave.variant: %w", err)
	}
	c.Derived.Variant = v

	if c.Wave.Rows < 0 || c.Wave.Columns < 0 {
		return fmt.Errorf("wave grid %dx%d: %w", c.Wave.Rows, c.Wave.Columns, mesh.ErrInvalidDimensions)
	}
	if rows, cols := c.GridSize(); rows < 2 || cols < 1 {
		return fmt.Errorf("wave grid %dx%d: %w", rows, cols, mesh.ErrInvalidDimensions)
	}

	if c.Wave.TimeStep <= 0 {
		return errors.New("wave.time_step must be positive")
	}
	c.Derived.TimeStep32 = float32(c.Wave.TimeStep)

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	if err := c.Derived.LogLevel.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: want text or json", c.Log.Format)
	}

	if c.Telemetry.FrameWindow < 1 {
		c.Telemetry.FrameWindow = 300
	}
	return nil
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
