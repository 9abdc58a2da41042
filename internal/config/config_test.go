package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.JSONStream {
		t.Error("JSONStream should be false by default")
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.ShowPassed {
		t.Error("ShowPassed should be false by default")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.Verbosity, Info)
	testutil.AssertEqual(t, cfg.Workers, 1)
	testutil.AssertFalse(t, cfg.FailFast)
	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertTrue(t, cfg.Filter.Matches("anything"))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"debug verbosity", func(c *Config) { c.Verbosity = Debug }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"many workers", func(c *Config) { c.Workers = 16 }, false},
		{"no output stream", func(c *Config) { c.OutputFile = nil }, true},
		{"no log stream", func(c *Config) { c.LogFile = nil }, true},
		{"stream without json", func(c *Config) { c.Output.JSONStream = true }, true},
		{"json stream", func(c *Config) { c.Output.JSONFormat, c.Output.JSONStream = true, true }, false},
		{"narrow lines", func(c *Config) { c.Output.MaxLineLength = 20 }, true},
		{"bad pattern", func(c *Config) { c.Filter.NamePattern = "en (passant" }, true},
		{"good pattern", func(c *Config) { c.Filter.NamePattern = "^en passant" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestFilterConfig_Matches(t *testing.T) {
	f := &FilterConfig{NamePattern: "mate$"}
	testutil.AssertNoError(t, f.Validate())

	testutil.AssertTrue(t, f.Matches("fool's mate"))
	testutil.AssertTrue(t, f.Matches("smothered mate"))
	testutil.AssertFalse(t, f.Matches("stalemate trap"))
	testutil.AssertFalse(t, f.Matches("en passant"))
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithJSONStream(true).
		WithMaxLineLength(120).
		ShowPassed(true).
		WithWorkers(4).
		WithFailFast(true).
		WithNamePattern("passant").
		WithOutput(out).
		WithLog(out).
		WithVerbosity(Debug).
		Build()

	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertTrue(t, cfg.Output.JSONFormat)
	testutil.AssertTrue(t, cfg.Output.JSONStream)
	testutil.AssertEqual(t, cfg.Output.MaxLineLength, uint(120))
	testutil.AssertTrue(t, cfg.Output.ShowPassed)
	testutil.AssertEqual(t, cfg.Workers, 4)
	testutil.AssertTrue(t, cfg.FailFast)
	testutil.AssertTrue(t, cfg.Filter.Matches("white en passant"))
	testutil.AssertFalse(t, cfg.Filter.Matches("promotion"))
	testutil.AssertEqual(t, cfg.Verbosity, Debug)
	if cfg.OutputFile != out || cfg.LogFile != out {
		t.Error("builder did not set streams")
	}
}
