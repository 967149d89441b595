package engine

import (
	"time"

	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/table"
)

// Status is the outcome of a check.
type Status string

const (
	Passed Status = "Passed"
	Failed Status = "Failed"
)

func statusOf(ok bool) Status {
	if ok {
		return Passed
	}
	return Failed
}

// HeaderCheck is the header-presence outcome for a row's declared template.
type HeaderCheck struct {
	Status Status `json:"status"`

	// Missing lists mandatory columns absent from the batch header.
	Missing []string `json:"missing,omitempty"`

	// Message describes the failure; empty when passed.
	Message string `json:"message,omitempty"`
}

// String returns "Passed" or the failure message.
func (h HeaderCheck) String() string {
	if h.Status == Passed {
		return string(Passed)
	}
	return h.Message
}

// RowVerdict is the audit outcome of one content row.
type RowVerdict struct {
	// Template is the row's declared template, trimmed; empty if none.
	Template string `json:"template,omitempty"`

	CategoryStatus Status       `json:"category_status"`
	TemplateStatus Status       `json:"template_status"`
	HeaderStatus   HeaderCheck  `json:"header_status"`
	ValueStatus    Status       `json:"value_status"`
	OverallStatus  Status       `json:"overall_status"`
	Diagnostics    []Diagnostic `json:"diagnostics"`
}

// Passed reports whether every check passed.
func (v RowVerdict) Passed() bool {
	return v.OverallStatus == Passed
}

// Messages returns the diagnostic messages in detection order.
func (v RowVerdict) Messages() []string {
	out := make([]string, len(v.Diagnostics))
	for i, d := range v.Diagnostics {
		out[i] = d.Message
	}
	return out
}

// Stats summarizes a run.
type Stats struct {
	Total          int `json:"total"`
	Passed         int `json:"passed"`
	Failed         int `json:"failed"`
	CategoryErrors int `json:"category_errors"`
	ValueErrors    int `json:"value_errors"`
	TemplateErrors int `json:"template_errors"`
	HeaderErrors   int `json:"header_errors"`
}

// Tally computes statistics from verdicts in a single pass.
func Tally(verdicts []RowVerdict) Stats {
	s := Stats{Total: len(verdicts)}
	for _, v := range verdicts {
		if v.OverallStatus == Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		if v.CategoryStatus == Failed {
			s.CategoryErrors++
		}
		if v.ValueStatus == Failed {
			s.ValueErrors++
		}
		if v.TemplateStatus == Failed {
			s.TemplateErrors++
		}
		if v.HeaderStatus.Status == Failed {
			s.HeaderErrors++
		}
	}
	return s
}

// Report is the complete output of a run.
type Report struct {
	RunID             string           `json:"run_id"`
	GeneratedAt       time.Time        `json:"generated_at"`
	SuggestedFileName string           `json:"suggested_file_name"`
	Headers           []string         `json:"headers"`
	Rows              []table.Record   `json:"rows"`
	Verdicts          []RowVerdict     `json:"verdicts"`
	Stats             Stats            `json:"stats"`
	Masters           master.Counts    `json:"masters"`
	Warnings          []master.Warning `json:"warnings,omitempty"`
}
