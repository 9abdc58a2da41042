package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONStream writes one JSON document per scenario.
func (b *ConfigBuilder) WithJSONStream(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONStream = enabled
	return b
}

// ShowPassed controls whether passing queries are listed.
func (b *ConfigBuilder) ShowPassed(show bool) *ConfigBuilder {
	b.cfg.Output.ShowPassed = show
	return b
}

// WithWorkers sets the number of scenario workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithFailFast stops starting scenarios after the first failure.
func (b *ConfigBuilder) WithFailFast(enabled bool) *ConfigBuilder {
	b.cfg.FailFast = enabled
	return b
}

// WithNamePattern selects scenarios by name.
func (b *ConfigBuilder) WithNamePattern(pattern string) *ConfigBuilder {
	b.cfg.Filter.NamePattern = pattern
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
