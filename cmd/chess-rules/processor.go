package main

import (
	"io"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// stdinName labels scenarios read from standard input.
const stdinName = "<stdin>"

// run evaluates the scenario files, or stdin when there are none, and writes
// the reports to cfg.OutputFile. It reports failed when a file could not be
// loaded or any scenario failed.
func run(cfg *config.Config, files []string, stdin io.Reader, logger log.Interface) (failed bool, err error) {
	scenarios, loadFailed := collectScenarios(cfg, files, stdin, logger)
	failed, err = evaluate(cfg, scenarios, logger)
	return failed || loadFailed, err
}

// runFEN evaluates a single FEN position and lists every result.
func runFEN(cfg *config.Config, fen string, logger log.Interface) (failed bool, err error) {
	sc, err := fenScenario(fen)
	if err != nil {
		return true, err
	}
	return evaluate(cfg, []scenario.Scenario{sc}, logger)
}

// collectScenarios loads every file and keeps the scenarios selected by
// cfg.Filter. A file that fails to load is logged and skipped.
func collectScenarios(cfg *config.Config, files []string, stdin io.Reader, logger log.Interface) (selected []scenario.Scenario, loadFailed bool) {
	var all []scenario.Scenario
	if len(files) == 0 {
		scenarios, err := scenario.Parse(stdin, stdinName)
		if err != nil {
			logger.WithError(err).Error("cannot load scenarios")
			return nil, true
		}
		all = scenarios
	}

	for _, file := range files {
		scenarios, err := scenario.Load(file)
		if err != nil {
			logger.WithError(err).WithField("file", file).Error("cannot load scenarios")
			loadFailed = true
			continue
		}
		logger.WithFields(log.Fields{"file": file, "scenarios": len(scenarios)}).Debug("loaded")
		all = append(all, scenarios...)
	}

	for _, sc := range all {
		if cfg.Filter.Matches(sc.Name) {
			selected = append(selected, sc)
		}
	}
	if skipped := len(all) - len(selected); skipped > 0 {
		logger.WithField("pattern", cfg.Filter.NamePattern).Infof("%d scenarios not selected", skipped)
	}
	return selected, loadFailed
}

// evaluate runs the scenarios on the worker pool and writes their reports in
// input order.
func evaluate(cfg *config.Config, scenarios []scenario.Scenario, logger log.Interface) (failed bool, err error) {
	logger.WithFields(log.Fields{"scenarios": len(scenarios), "workers": cfg.Workers}).Info("evaluating")

	reports := worker.Evaluate(scenarios, cfg.Workers, cfg.FailFast)

	writer := output.NewWriter(cfg.OutputFile, cfg)
	for i, report := range reports {
		logReport(logger, &scenarios[i], report)
		if err := writer.WriteReport(report); err != nil {
			return true, errors.Wrapf(err, "writing report %d", i+1)
		}
	}
	if err := writer.Close(); err != nil {
		return true, errors.Wrap(err, "writing reports")
	}

	summary := writer.Summary()
	logger.WithFields(log.Fields{
		"passed":  summary.Passed,
		"failed":  summary.Failed,
		"skipped": summary.Skipped,
	}).Info("done")
	return summary.Failed > 0, nil
}

// logReport logs one line per scenario at info level and each query at
// debug level. Failures are logged as warnings.
func logReport(logger log.Interface, sc *scenario.Scenario, report *scenario.Report) {
	ctx := logger.WithFields(log.Fields{"scenario": sc.Name, "file": sc.File, "line": sc.Line})
	switch {
	case report == nil:
		ctx.Info("skipped")
		return
	case report.Err != nil:
		ctx.WithError(report.Err).Warn("failed")
		return
	case report.Failed():
		ctx.Warn("failed")
	default:
		ctx.Info("passed")
	}

	for _, o := range report.Outcomes {
		qctx := ctx.WithFields(log.Fields{"query": o.Query, "op": o.Op, "got": o.Got})
		if o.Err != nil {
			qctx = qctx.WithError(o.Err)
		}
		qctx.Debug("query")
	}
}

// fenScenario builds a scenario asking for the status of the side to move,
// whether it is in check and the legal moves of each of its pieces.
func fenScenario(fen string) (scenario.Scenario, error) {
	snap, err := engine.NewSnapshotFromFEN(fen)
	if err != nil {
		return scenario.Scenario{}, errors.Wrapf(err, "-fen %q", fen)
	}
	colour := strings.ToLower(snap.ToMove.String())

	sc := scenario.Scenario{
		Name: fen,
		FEN:  fen,
		Queries: []scenario.Query{
			{Op: "status", Colour: colour},
			{Op: "check", Colour: colour},
		},
	}
	for _, piece := range snap.Board.PiecesOf(snap.ToMove) {
		sc.Queries = append(sc.Queries, scenario.Query{Op: "moves", Square: piece.Position.String()})
	}
	return sc, nil
}
