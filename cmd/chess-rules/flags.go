// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length of text reports")
	jsonOutput   = flag.Bool("j", false, "Output in JSON format")
	jsonStream   = flag.Bool("jsonstream", false, "Write one JSON document per scenario (implies -j)")
	showPassed   = flag.Bool("passed", false, "List passing queries as well as failures")

	// Scenario selection
	runPattern  = flag.String("run", "", "Only run scenarios whose name matches this regular expression")
	failFast    = flag.Bool("failfast", false, "Do not start new scenarios after the first failure")
	fenPosition = flag.String("fen", "", "Evaluate a FEN position: status, check and legal moves for the side to move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Info, "Verbosity: 0 quiet, 1 one line per scenario, 2 every query")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.FailFast = *failFast
	cfg.Filter.NamePattern = *runPattern

	applyOutputFlags(cfg)
}

// applyOutputFlags sets the report format options.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.JSONFormat = *jsonOutput || *jsonStream
	cfg.Output.JSONStream = *jsonStream
	cfg.Output.ShowPassed = *showPassed || *fenPosition != ""
}
