// Package config loads and validates render settings from the environment.
// Command-line flags are bound on top of the loaded values by cmd/fract.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/willbeason/fract/pkg/render"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FRACT_"

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid configuration")

// Config holds everything needed for one invocation.
type Config struct {
	Width         int `env:"WIDTH" envDefault:"500"`
	Height        int `env:"HEIGHT" envDefault:"500"`
	MaxIterations int `env:"MAX_ITERATIONS" envDefault:"128"`

	JuliaC  Complex `env:"JULIA_C" envDefault:"-0.4+0.6i"`
	Pattern Pattern `env:"PATTERN" envDefault:"01011"`

	// Workers is the render parallelism; 0 uses every available CPU.
	Workers int `env:"WORKERS" envDefault:"0"`

	// Timeout bounds each render; 0 disables it.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	OutputDir      string `env:"OUTPUT_DIR" envDefault:"."`
	JuliaOutput    string `env:"JULIA_OUTPUT" envDefault:"julia.png"`
	LyapunovOutput string `env:"LYAPUNOV_OUTPUT" envDefault:"lyapunov.png"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a Config from FRACT_* environment variables, falling back to the
// defaults for anything unset. The result is not validated.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting that cannot be rendered. Each error wraps
// ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if c.Width <= 0 || c.Height <= 0 {
		invalid("resolution %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxIterations < 1 || c.MaxIterations > math.MaxUint16 {
		invalid("max iterations %d must be in [1, %d]", c.MaxIterations, math.MaxUint16)
	}
	if c.Pattern.Len() == 0 {
		invalid("forcing pattern is empty")
	}
	if c.Workers < 0 {
		invalid("workers %d must not be negative", c.Workers)
	}
	if c.Timeout < 0 {
		invalid("timeout %s must not be negative", c.Timeout)
	}
	if c.JuliaOutput == "" || c.LyapunovOutput == "" {
		invalid("output file names must not be empty")
	}
	if _, err := c.Level(); err != nil {
		invalid("log level: %v", err)
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// JuliaParams returns the escape-time render parameters. Call Validate first.
func (c Config) JuliaParams() render.JuliaParams {
	return render.JuliaParams{
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: uint16(c.MaxIterations),
		C:             complex64(c.JuliaC),
	}
}

// LyapunovParams returns the Lyapunov render parameters. Call Validate first.
func (c Config) LyapunovParams() render.LyapunovParams {
	return render.LyapunovParams{
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: uint16(c.MaxIterations),
		Pattern:       c.Pattern.Pattern,
	}
}

// JuliaPath is where the escape-time image is written.
func (c Config) JuliaPath() string {
	return filepath.Join(c.OutputDir, c.JuliaOutput)
}

// LyapunovPath is where the Lyapunov image is written.
func (c Config) LyapunovPath() string {
	return filepath.Join(c.OutputDir, c.LyapunovOutput)
}
