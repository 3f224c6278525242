package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-evm/dsp/evm"
)

// Config is the on-disk configuration of evmmag.
type Config struct {
	EVM evm.Config `yaml:"evm"`
	// Scale resizes every input frame before magnification.
	Scale float64 `yaml:"scale"`
	// Writers bounds the number of concurrent PNG encoders.
	Writers  int    `yaml:"writers"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		EVM:      evm.DefaultConfig(),
		Scale:    1,
		Writers:  4,
		LogLevel: "info",
	}
}

// LoadConfig reads filename and overlays it on base. Keys absent from the
// file keep their base values.
func LoadConfig(filename string, base Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the CLI settings and the magnifier parameters.
func (c Config) Validate() error {
	if err := c.EVM.Validate(); err != nil {
		return err
	}

	if !(c.Scale > 0) || c.Scale > 8 {
		return fmt.Errorf("scale %g must be in (0, 8]", c.Scale)
	}

	if c.Writers < 1 {
		return fmt.Errorf("writers %d must be >= 1", c.Writers)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
