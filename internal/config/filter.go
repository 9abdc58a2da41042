package config

import (
	"fmt"
	"regexp"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FilterConfig selects which scenarios are run.
type FilterConfig struct {
	// NamePattern is a regular expression matched against scenario names.
	// Empty selects every scenario.
	NamePattern string

	re *regexp.Regexp
}

// NewFilterConfig creates a FilterConfig that selects every scenario.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate compiles the name pattern.
func (f *FilterConfig) Validate() error {
	if f.NamePattern == "" {
		f.re = nil
		return nil
	}
	re, err := regexp.Compile(f.NamePattern)
	if err != nil {
		return fmt.Errorf("scenario name pattern %q: %v: %w", f.NamePattern, err, errors.ErrInvalidConfig)
	}
	f.re = re
	return nil
}

// Matches reports whether a scenario with the given name should run.
// Validate must have been called when a pattern is set.
func (f *FilterConfig) Matches(name string) bool {
	if f.NamePattern == "" {
		return true
	}
	if f.re == nil {
		f.re = regexp.MustCompile(f.NamePattern)
	}
	return f.re.MatchString(name)
}
