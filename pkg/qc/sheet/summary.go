package sheet

import (
	"strings"

	"catalogqc/auditor/pkg/qc/engine"
)

// Report columns appended to the content headers.
const (
	ColumnHeaderCheck = "QC Header Check"
	ColumnRemarks     = "QC Remarks"
	ColumnFinalStatus = "QC Final Status"
)

// summaryEllipsis marks a truncated final status.
const summaryEllipsis = " ..."

// Labels controls the wording of the appended report columns.
type Labels struct {
	// Pass is the final status of a passing row.
	Pass string

	// Fail prefixes the final status of a failing row.
	Fail string

	// AllPassed is the remark of a passing row.
	AllPassed string

	// MaxSummary bounds the diagnostics quoted in the final status.
	// Zero or less quotes none.
	MaxSummary int
}

// DefaultLabels returns the standard report wording.
func DefaultLabels() Labels {
	return Labels{
		Pass:       "Success",
		Fail:       "Failed",
		AllPassed:  "All checks passed",
		MaxSummary: 3,
	}
}

// problems lists a row's failures in check order, with the header failure
// placed after the category and template diagnostics.
func problems(v engine.RowVerdict) []string {
	out := make([]string, 0, len(v.Diagnostics)+1)
	headerAdded := v.HeaderStatus.Status == engine.Passed
	for _, d := range v.Diagnostics {
		if !headerAdded && d.Check == engine.CheckValue {
			out = append(out, v.HeaderStatus.Message)
			headerAdded = true
		}
		out = append(out, d.String())
	}
	if !headerAdded {
		out = append(out, v.HeaderStatus.Message)
	}
	return out
}

// Remarks returns the QC Remarks cell of a verdict.
func (l Labels) Remarks(v engine.RowVerdict) string {
	if v.Passed() {
		return l.AllPassed
	}
	return strings.Join(problems(v), engine.RemarkSeparator)
}

// FinalStatus returns the QC Final Status cell of a verdict.
func (l Labels) FinalStatus(v engine.RowVerdict) string {
	if v.Passed() {
		return l.Pass
	}
	items := problems(v)
	if l.MaxSummary <= 0 || len(items) == 0 {
		return l.Fail
	}

	truncated := len(items) > l.MaxSummary
	if truncated {
		items = items[:l.MaxSummary]
	}
	s := l.Fail + ": " + strings.Join(items, engine.RemarkSeparator)
	if truncated {
		s += summaryEllipsis
	}
	return s
}
