package sheet

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is returned when a CSV input has no header row.
var ErrEmptyFile = errors.New("file has no header row")

// ReadError reports a failure reading one input table.
type ReadError struct {
	Table string // Logical table name ("brands", "content", ...)
	Path  string // Source path, empty for in-memory readers
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read %s: %v", e.Table, e.Cause)
	}
	return fmt.Sprintf("read %s (%s): %v", e.Table, e.Path, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ExportError represents an error while writing a report.
type ExportError struct {
	Format string // Export format ("csv", "json")
	Rows   int    // Number of rows being exported
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [format=%s, rows=%d]: %v", e.Format, e.Rows, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ExportError) Unwrap() error {
	return e.Cause
}

// NewExportError creates a new ExportError.
func NewExportError(format string, rows int, cause error) *ExportError {
	return &ExportError{
		Format: format,
		Rows:   rows,
		Cause:  cause,
	}
}
