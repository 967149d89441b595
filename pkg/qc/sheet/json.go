package sheet

import (
	"context"
	"encoding/json"
	"io"

	"catalogqc/auditor/pkg/qc/engine"
)

// JSONExporter writes the complete report as JSON.
type JSONExporter struct {
	// Pretty enables pretty-printing with indentation.
	Pretty bool
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(pretty bool) *JSONExporter {
	return &JSONExporter{Pretty: pretty}
}

// Export writes the report to w.
func (e *JSONExporter) Export(ctx context.Context, report *engine.Report, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if e.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return NewExportError(FormatJSON, len(report.Rows), err)
	}
	return nil
}
