package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// ReportWriter is the interface for writing scenario reports.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report. A nil report marks a skipped
	// scenario.
	WriteReport(report *scenario.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error

	// Summary returns the verdicts counted so far.
	Summary() Summary
}

// NewWriter returns the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	switch {
	case cfg.Output.JSONFormat && cfg.Output.JSONStream:
		return NewJSONWriterSingle(w)
	case cfg.Output.JSONFormat:
		return NewJSONWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes reports as text, followed by a summary line on Close.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	summary Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(report *scenario.Report) error {
	tw.summary.Add(report)
	if report != nil {
		OutputReport(report, tw.cfg, tw.w)
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the summary line.
func (tw *TextWriter) Close() error {
	OutputSummary(tw.summary, tw.w)
	return nil
}

// Summary returns the verdicts counted so far.
func (tw *TextWriter) Summary() Summary {
	return tw.summary
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*scenario.Report
	summary Summary
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*scenario.Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(report *scenario.Report) error {
	jw.summary.Add(report)
	if jw.single {
		if report == nil {
			return nil
		}
		return encodeJSON(jw.w, ReportToJSON(report))
	}

	// Buffer for batch output
	jw.reports = append(jw.reports, report)
	return nil
}

// Flush writes all buffered reports as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := OutputReportsJSON(jw.reports, jw.w)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// Summary returns the verdicts counted so far.
func (jw *JSONWriter) Summary() Summary {
	return jw.summary
}
