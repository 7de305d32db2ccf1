// Package config loads iconlint settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// UpdateIgnoreEnv selects ledger regeneration when set to "true".
const UpdateIgnoreEnv = "SI_UPDATE_IGNORE"

// Ledger configures the known-issues ledger.
type Ledger struct {
	// File is the path of the persisted ledger.
	File string `toml:"file"`
	// Required makes a missing ledger file an error.
	Required bool `toml:"required"`
	// Regenerate rebuilds the ledger from this run's failures.
	Regenerate bool `toml:"regenerate"`
}

// Config holds every tunable of a lint run.
type Config struct {
	// CanvasSize is the width and height of the icon canvas.
	CanvasSize float64 `toml:"canvas_size"`
	// FloatPrecision is the number of fractional digits measurements are
	// rounded to before comparison.
	FloatPrecision int `toml:"float_precision"`
	// MaxFloatPrecision is the largest number of fractional digits
	// allowed in path data.
	MaxFloatPrecision int `toml:"max_float_precision"`
	// Tolerance is the accepted deviation of the path center.
	Tolerance float64 `toml:"tolerance"`

	IconsDir string `toml:"icons_dir"`
	Catalog  string `toml:"catalog"`
	LogLevel string `toml:"log_level"`
	// Workers is the number of concurrent analyses; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	Ledger Ledger `toml:"ledger"`
}

// Default returns the settings of the shared icon library.
func Default() Config {
	return Config{
		CanvasSize:        24,
		FloatPrecision:    3,
		MaxFloatPrecision: 5,
		Tolerance:         0.001,
		IconsDir:          "icons",
		Catalog:           "_data/simple-icons.json",
		LogLevel:          "info",
		Ledger: Ledger{
			File: ".svglint-ignored.json",
		},
	}
}

// Load reads path over the defaults, applies the environment and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv(UpdateIgnoreEnv) == "true" {
		c.Ledger.Regenerate = true
	}
}

// Validate rejects settings that would make the checks meaningless.
func (c Config) Validate() error {
	var errs []error
	if !(c.CanvasSize > 0) {
		errs = append(errs, fmt.Errorf("canvas_size must be positive, got %v", c.CanvasSize))
	}
	if c.FloatPrecision < 0 {
		errs = append(errs, fmt.Errorf("float_precision must not be negative, got %d", c.FloatPrecision))
	}
	if c.MaxFloatPrecision < 0 {
		errs = append(errs, fmt.Errorf("max_float_precision must not be negative, got %d", c.MaxFloatPrecision))
	}
	if !(c.Tolerance >= 0) {
		errs = append(errs, fmt.Errorf("tolerance must not be negative, got %v", c.Tolerance))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Ledger.File == "" {
		errs = append(errs, errors.New("ledger.file must be set"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
