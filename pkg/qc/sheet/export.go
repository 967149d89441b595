package sheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"catalogqc/auditor/pkg/qc/engine"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Exporter writes an audit report.
type Exporter interface {
	Export(ctx context.Context, report *engine.Report, w io.Writer) error
}

// NewExporter returns the exporter for a format.
func NewExporter(format string, labels Labels) (Exporter, error) {
	switch format {
	case FormatCSV, "":
		return NewCSVExporter(labels), nil
	case FormatJSON:
		return NewJSONExporter(true), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q (want %s or %s)", format, FormatCSV, FormatJSON)
	}
}

// WriteFile exports the report into dir under its suggested file name and
// returns the written path. The file is replaced atomically.
func WriteFile(ctx context.Context, exporter Exporter, report *engine.Report, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, report.SuggestedFileName)
	tmp, err := os.CreateTemp(dir, ".qc-report-*")
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := exporter.Export(ctx, report, tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename report file: %w", err)
	}
	return path, nil
}
