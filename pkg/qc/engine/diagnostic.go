package engine

import (
	"fmt"
	"strings"
)

// Check identifies which validation stage produced a diagnostic.
type Check string

const (
	CheckCategory Check = "category" // category present and mapped
	CheckTemplate Check = "template" // template present and consistent
	CheckHeader   Check = "header"   // mandatory columns present in batch header
	CheckValue    Check = "value"    // field values conform to rules and masters
)

// Diagnostic is one problem detected on a content row.
type Diagnostic struct {
	Check      Check  `json:"check"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// String returns the message with its suggestion, if any.
func (d Diagnostic) String() string {
	if d.Suggestion == "" {
		return d.Message
	}
	return fmt.Sprintf("%s (%s)", d.Message, d.Suggestion)
}

// DiagnosticList accumulates diagnostics in detection order.
type DiagnosticList struct {
	Items []Diagnostic
}

// NewDiagnosticList creates an empty list.
func NewDiagnosticList() *DiagnosticList {
	return &DiagnosticList{Items: make([]Diagnostic, 0)}
}

// Add appends a diagnostic.
func (l *DiagnosticList) Add(d Diagnostic) {
	l.Items = append(l.Items, d)
}

// Addf appends a diagnostic with a formatted message.
func (l *DiagnosticList) Addf(check Check, field, value, format string, args ...interface{}) {
	l.Add(Diagnostic{
		Check:   check,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Len returns the number of diagnostics.
func (l *DiagnosticList) Len() int {
	return len(l.Items)
}

// HasCheck reports whether any diagnostic came from the given check.
func (l *DiagnosticList) HasCheck(check Check) bool {
	for _, d := range l.Items {
		if d.Check == check {
			return true
		}
	}
	return false
}

// Messages returns the plain messages in order.
func (l *DiagnosticList) Messages() []string {
	out := make([]string, len(l.Items))
	for i, d := range l.Items {
		out[i] = d.Message
	}
	return out
}

// String joins all messages with the report delimiter.
func (l *DiagnosticList) String() string {
	return strings.Join(l.Messages(), RemarkSeparator)
}
