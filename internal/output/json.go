package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// JSONReport represents a scenario report in JSON format.
type JSONReport struct {
	Scenario string        `json:"scenario"`
	File     string        `json:"file,omitempty"`
	FEN      string        `json:"fen,omitempty"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Outcomes []JSONOutcome `json:"outcomes,omitempty"`
}

// JSONOutcome represents one query result in JSON format.
type JSONOutcome struct {
	Query   int    `json:"query"`
	Op      string `json:"op"`
	Subject string `json:"subject,omitempty"`
	Got     string `json:"got"`
	Want    string `json:"want,omitempty"`
	Passed  bool   `json:"passed"`
	Error   string `json:"error,omitempty"`
}

// JSONOutput holds a whole run for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
	Summary Summary       `json:"summary"`
}

// OutputReportsJSON writes reports and their summary as one JSON document.
// Nil reports are counted as skipped and otherwise left out.
func OutputReportsJSON(reports []*scenario.Report, w io.Writer) error {
	out := &JSONOutput{
		Reports: make([]*JSONReport, 0, len(reports)),
		Summary: Summarize(reports),
	}
	for _, r := range reports {
		if r != nil {
			out.Reports = append(out.Reports, ReportToJSON(r))
		}
	}
	return encodeJSON(w, out)
}

// ReportToJSON converts a scenario report to JSON format.
func ReportToJSON(report *scenario.Report) *JSONReport {
	jr := &JSONReport{
		Scenario: report.Scenario,
		File:     report.File,
		FEN:      report.FEN,
		Passed:   !report.Failed(),
		Error:    errorText(report.Err),
	}
	for _, o := range report.Outcomes {
		jr.Outcomes = append(jr.Outcomes, JSONOutcome{
			Query:   o.Query,
			Op:      o.Op,
			Subject: o.Subject,
			Got:     o.Got,
			Want:    o.Want,
			Passed:  o.Passed,
			Error:   errorText(o.Err),
		})
	}
	return jr
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
