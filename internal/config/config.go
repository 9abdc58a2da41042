// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet        = 0 // warnings and failures only
	Info         = 1 // one line per scenario
	Debug        = 2 // every query
	MaxVerbosity = Debug
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=quiet, 1=info, 2=debug

	// Evaluation
	Workers  int
	FailFast bool

	Output *OutputConfig
	Filter *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Info,
		Workers:    1,
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d not in %d..%d: %w", c.Verbosity, Quiet, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
