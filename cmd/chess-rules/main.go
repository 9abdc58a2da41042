// chess-rules evaluates chess rule scenarios: it builds positions from piece
// lists, FEN or SAN move lists and checks legal moves, check, checkmate,
// stalemate and promotion against expected results.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	cleanup, err := prepare(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(cfg)

	var failed bool
	if *fenPosition != "" {
		failed, err = runFEN(cfg, *fenPosition, logger)
	} else {
		failed, err = run(cfg, flag.Args(), os.Stdin, logger)
	}
	if err != nil {
		logger.WithError(err).Error("evaluation stopped")
		failed = true
	}

	cleanup()
	if failed {
		os.Exit(1)
	}
}

// prepare validates cfg and only then opens the log and output files named
// on the command line, so a rejected configuration leaves no files behind.
func prepare(cfg *config.Config) (cleanup func(), err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)
	return func() {
		closeOutput()
		closeLog()
	}, nil
}

// newLogger returns a logger writing to cfg.LogFile at the level cfg.Verbosity selects.
func newLogger(cfg *config.Config) *log.Logger {
	return &log.Logger{
		Handler: cli.New(cfg.LogFile),
		Level:   levelFor(cfg.Verbosity),
	}
}

// levelFor maps verbosity to a log level: 0 warn, 1 info, 2 and above debug.
func levelFor(verbosity int) log.Level {
	switch {
	case verbosity <= config.Quiet:
		return log.WarnLevel
	case verbosity == config.Info:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	switch {
	case *appendLog != "":
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
		return closer(file)
	case *logFile != "":
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
		return closer(file)
	}
	return func() {}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return closer(file)
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [scenario-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Evaluates chess rule scenarios written in YAML. Reads standard input\n")
	fmt.Fprintf(os.Stderr, "when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nQuery operations:\n")
	fmt.Fprintf(os.Stderr, "  moves      legal destinations of the piece on square\n")
	fmt.Fprintf(os.Stderr, "  pseudo     pseudo-legal destinations of the piece on square\n")
	fmt.Fprintf(os.Stderr, "  valid      whether square may move to target, with en passant offset\n")
	fmt.Fprintf(os.Stderr, "  check      whether colour is in check\n")
	fmt.Fprintf(os.Stderr, "  checkmate  whether colour is checkmated\n")
	fmt.Fprintf(os.Stderr, "  stalemate  whether colour is stalemated\n")
	fmt.Fprintf(os.Stderr, "  status     ongoing, check, checkmate or stalemate\n")
	fmt.Fprintf(os.Stderr, "  promote    replace the pawn on square with kind\n")
	fmt.Fprintf(os.Stderr, "  play       move square to target and continue from there\n")
}
