// Package output writes scenario reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// OutputWriter handles formatted output with line length control.
// Continuation lines are indented.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// SetIndent sets the prefix of continuation lines.
func (o *OutputWriter) SetIndent(indent string) {
	o.indent = indent
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.NewLine()
			o.startLine()
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteWords writes each space separated word of s, wrapping between words.
func (o *OutputWriter) WriteWords(s string) {
	for _, word := range strings.Fields(s) {
		o.Write(word)
	}
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// startLine writes the indent at the start of a line.
func (o *OutputWriter) startLine() {
	if o.indent != "" {
		fmt.Fprint(o.w, o.indent)
		o.lineLength = len(o.indent)
	}
}

// OutputReport writes one report as text.
//
//	PASS corner king (testdata/rules.yaml)
//	FAIL wrong expectations (inline.yaml)
//	  position 4k3/8/8/8/8/8/8/1N2K3 w - - 0 1
//	  query 1 moves b1: got d2 a3 c3 want c3 a3
//
// Passing queries are only listed when cfg.Output.ShowPassed is set.
func OutputReport(report *scenario.Report, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	ow.SetIndent("    ")

	failed := report.Failed()
	ow.Write(verdict(failed))
	ow.WriteWords(report.Scenario)
	if report.File != "" {
		ow.Write("(" + report.File + ")")
	}
	ow.NewLine()

	if report.Err != nil {
		ow.WriteNoSpace("  error:")
		ow.WriteWords(report.Err.Error())
		ow.NewLine()
		return
	}
	if failed && report.FEN != "" {
		ow.WriteNoSpace("  position")
		ow.WriteWords(report.FEN)
		ow.NewLine()
	}

	for _, o := range report.Outcomes {
		if o.Passed && !cfg.Output.ShowPassed {
			continue
		}
		outputOutcome(o, ow)
	}
}

func outputOutcome(o scenario.Outcome, ow *OutputWriter) {
	ow.WriteNoSpace(fmt.Sprintf("  query %d", o.Query))
	ow.Write(o.Op)
	if o.Subject != "" {
		ow.WriteNoSpace(" " + o.Subject)
	}
	ow.WriteNoSpace(":")

	switch {
	case o.Want != "" && !o.Passed:
		ow.Write("got")
		ow.WriteWords(orNone(o.Got))
		ow.Write("want")
		ow.WriteWords(orNone(o.Want))
	case o.Err != nil:
		ow.Write("error:")
		ow.WriteWords(o.Err.Error())
	default:
		ow.WriteWords(orNone(o.Got))
	}
	ow.NewLine()
}

// orNone renders an empty result, such as a piece with no moves.
func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func verdict(failed bool) string {
	if failed {
		return "FAIL"
	}
	return "PASS"
}

// OutputSummary writes the closing line of a text report.
func OutputSummary(s Summary, w io.Writer) {
	status := "ok"
	if s.Failed > 0 {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s: %d scenarios, %d passed, %d failed, %d skipped\n",
		status, s.Scenarios, s.Passed, s.Failed, s.Skipped)
}

// Summary counts scenario verdicts.
type Summary struct {
	Scenarios int `json:"scenarios"`
	Passed    int `json:"passed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Add counts one report. A nil report is a skipped scenario.
func (s *Summary) Add(report *scenario.Report) {
	s.Scenarios++
	switch {
	case report == nil:
		s.Skipped++
	case report.Failed():
		s.Failed++
	default:
		s.Passed++
	}
}

// Summarize counts the verdicts of a run.
func Summarize(reports []*scenario.Report) Summary {
	var s Summary
	for _, r := range reports {
		s.Add(r)
	}
	return s
}
