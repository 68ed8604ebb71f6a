// Package config resolves the settings of the life shell. Values are layered
// defaults, then an optional YAML file, then LIFE_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"conway/internal/core"
	"conway/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LIFE_"

// Config represents the settings for both the window and the headless runner.
type Config struct {
	CellSize     int           `yaml:"cell_size" env:"CELL_SIZE"`
	CanvasWidth  int           `yaml:"canvas_width" env:"CANVAS_WIDTH"`
	CanvasHeight int           `yaml:"canvas_height" env:"CANVAS_HEIGHT"`
	Interval     time.Duration `yaml:"interval" env:"INTERVAL"`
	Speed        string        `yaml:"speed" env:"SPEED"`
	Seed         int64         `yaml:"seed" env:"SEED"`
	AliveColor   string        `yaml:"alive_color" env:"ALIVE_COLOR"`
	DeadColor    string        `yaml:"dead_color" env:"DEAD_COLOR"`
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL"`
	MetricsAddr  string        `yaml:"metrics_addr" env:"METRICS_ADDR"`
	Generations  int           `yaml:"generations" env:"GENERATIONS"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	c := Default()
	return &c
}

// Default returns the built-in settings: 6px cells on an 800x660 canvas,
// ticking every 400ms at 1x.
func Default() Config {
	return Config{
		CellSize:     6,
		CanvasWidth:  800,
		CanvasHeight: 660,
		Interval:     core.DefaultInterval,
		Speed:        core.DefaultSpeed.String(),
		AliveColor:   "#ffa500",
		DeadColor:    "#000000",
		LogLevel:     "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.CanvasWidth, "canvas-width", c.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&c.CanvasHeight, "canvas-height", c.CanvasHeight, "canvas height in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "tick interval at 1x speed")
	fs.StringVar(&c.Speed, "speed", c.Speed, "playback speed multiplier (0.5x to 5x)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 picks one from the clock)")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "color of alive cells")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "color of dead cells")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve prometheus metrics on this address")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop the headless run after this many generations (0 runs forever)")
}

// Resolve rebuilds c from defaults, the YAML file at path (if any) and the
// environment, then reapplies every flag the user set explicitly on fs. fs
// must be the FlagSet c was bound to.
func (c *Config) Resolve(fs *pflag.FlagSet, path string) error {
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
	}

	*c = Default()
	if path != "" {
		if err := c.loadFile(path); err != nil {
			return err
		}
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return c.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.GridSize(); err != nil {
		errs = append(errs, err)
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval %v must be positive", c.Interval))
	}
	if _, err := core.ParseSpeed(c.Speed); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations %d must not be negative", c.Generations))
	}
	return errors.Join(errs...)
}

// GridSize derives the board dimensions from the canvas and cell size.
func (c *Config) GridSize() (core.Size, error) {
	return core.GridSize(c.CanvasWidth, c.CanvasHeight, c.CellSize)
}

// PlaybackSpeed returns the parsed speed multiplier.
func (c *Config) PlaybackSpeed() (core.Speed, error) {
	return core.ParseSpeed(c.Speed)
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Colors returns the parsed alive and dead colors.
func (c *Config) Colors() (alive, dead color.RGBA, err error) {
	if alive, err = ParseColor(c.AliveColor); err != nil {
		return alive, dead, fmt.Errorf("alive color: %w", err)
	}
	if dead, err = ParseColor(c.DeadColor); err != nil {
		return alive, dead, fmt.Errorf("dead color: %w", err)
	}
	return alive, dead, nil
}

// ParseColor accepts "#rrggbb" or "rrggbb" and returns an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
