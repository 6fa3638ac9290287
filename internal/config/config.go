// Package config loads viewer and harness settings: embedded defaults, an
// optional YAML file, then command-line flags.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"percolator/internal/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all settings.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	View      ViewConfig      `yaml:"view"`
	Seed      int64           `yaml:"seed"`
	Threshold ThresholdConfig `yaml:"threshold"`
	Cache     CacheConfig     `yaml:"cache"`
	Color     ColorConfig     `yaml:"color"`
	Control   ControlConfig   `yaml:"control"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig sets the grid dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewConfig holds window settings.
type ViewConfig struct {
	Scale     int `yaml:"scale"`
	TPS       int `yaml:"tps"`
	HUDHeight int `yaml:"hud_height"`
}

// ThresholdConfig holds the threshold control settings.
type ThresholdConfig struct {
	Initial  float64 `yaml:"initial"`
	Step     float64 `yaml:"step"`
	Openness string  `yaml:"openness"` // inclusive | strict
}

// CacheConfig selects the frame cache strategy: eager, lazy or off.
type CacheConfig struct {
	Strategy string `yaml:"strategy"`
}

// ColorConfig selects the color policy and color source.
type ColorConfig struct {
	Policy  string   `yaml:"policy"` // stable | rank | frame | twotone
	Source  string   `yaml:"source"` // derived | hsv
	Palette []string `yaml:"palette"`
}

// ControlConfig holds input pacing.
type ControlConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
	PlayFPS    int `yaml:"play_fps"`
}

// SessionConfig points at the session file. Empty disables persistence.
type SessionConfig struct {
	Path string `yaml:"path"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Format string `yaml:"format"` // text | json
	Level  string `yaml:"level"`  // debug | info | warn | error
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the embedded defaults. Only keys present in
// the file are overwritten. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in cells")
	fs.IntVar(&c.View.Scale, "scale", c.View.Scale, "pixel scale multiplier")
	fs.IntVar(&c.View.TPS, "tps", c.View.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "grid seed (0 = session or random)")
	fs.Float64Var(&c.Threshold.Initial, "p", c.Threshold.Initial, "initial threshold in [0,1]")
	fs.Float64Var(&c.Threshold.Step, "step", c.Threshold.Step, "threshold control resolution")
	fs.StringVar(&c.Threshold.Openness, "openness", c.Threshold.Openness, "open cell predicate: inclusive or strict")
	fs.StringVar(&c.Cache.Strategy, "cache", c.Cache.Strategy, "frame cache strategy: eager, lazy or off")
	fs.StringVar(&c.Color.Policy, "colors", c.Color.Policy, "color policy: stable, rank, frame or twotone")
	fs.StringVar(&c.Session.Path, "session", c.Session.Path, "session file (empty = no persistence)")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format: text or json")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level")
}

// Parse builds a Config from args: defaults, then the file named by
// -config, then the remaining flags. Flags given on the command line win
// over the file.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	path := fs.String("config", "", "path to config.yaml (empty = defaults)")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return nil, err
		}
		*cfg = *loaded
		// re-apply explicit flags on top of the file
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.View.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive", ErrInvalid)
	case c.Threshold.Initial < 0 || c.Threshold.Initial > 1:
		return fmt.Errorf("%w: initial threshold %v outside [0,1]", ErrInvalid, c.Threshold.Initial)
	case c.StepLevel() == 0 || c.Threshold.Step > 1:
		return fmt.Errorf("%w: step %v must be in [0.01,1]", ErrInvalid, c.Threshold.Step)
	}
	if !oneOf(c.Threshold.Openness, "inclusive", "strict") {
		return fmt.Errorf("%w: openness %q", ErrInvalid, c.Threshold.Openness)
	}
	if !oneOf(c.Cache.Strategy, "eager", "lazy", "off") {
		return fmt.Errorf("%w: cache strategy %q", ErrInvalid, c.Cache.Strategy)
	}
	if !oneOf(c.Color.Policy, "stable", "rank", "frame", "twotone") {
		return fmt.Errorf("%w: color policy %q", ErrInvalid, c.Color.Policy)
	}
	if !oneOf(c.Color.Source, "derived", "hsv") {
		return fmt.Errorf("%w: color source %q", ErrInvalid, c.Color.Source)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// StepLevel returns the control resolution in hundredths.
func (c *Config) StepLevel() core.Level { return core.Quantize(c.Threshold.Step) }

// InitialLevel returns the quantized initial threshold.
func (c *Config) InitialLevel() core.Level { return core.Quantize(c.Threshold.Initial) }

// Debounce returns the slider quiet period.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Control.DebounceMS) * time.Millisecond
}

// Logger builds a slog.Logger writing to w in the configured format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
