package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// minLineLength is the narrowest text report that still fits a FEN.
const minLineLength = 40

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat enables JSON reports instead of text
	JSONFormat bool

	// JSONStream writes one JSON object per scenario instead of a single array
	JSONStream bool

	// MaxLineLength is the maximum line length for text reports
	MaxLineLength uint

	// ShowPassed lists passing queries in text reports, not only failures
	ShowPassed bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.JSONStream && !o.JSONFormat {
		return fmt.Errorf("json stream output requires json format: %w", errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < minLineLength {
		return fmt.Errorf("line length %d shorter than %d: %w", o.MaxLineLength, minLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
