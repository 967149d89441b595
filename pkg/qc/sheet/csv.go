package sheet

import (
	"context"
	"encoding/csv"
	"io"

	"catalogqc/auditor/pkg/qc/engine"
	"catalogqc/auditor/pkg/qc/table"
)

// CSVExporter re-emits the content rows with the QC columns appended.
type CSVExporter struct {
	Labels Labels
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(labels Labels) *CSVExporter {
	return &CSVExporter{Labels: labels}
}

// Export writes the header row followed by one row per audited content row.
// Rows read from a sheet are re-emitted cell by cell, so cells under blank or
// repeated headers survive; the header row is padded when a row is wider.
func (e *CSVExporter) Export(ctx context.Context, report *engine.Report, w io.Writer) error {
	writer := csv.NewWriter(w)

	width := len(report.Headers)
	for _, row := range report.Rows {
		width = max(width, len(row.Row()))
	}

	header := make([]string, width, width+3)
	copy(header, report.Headers)
	header = append(header, ColumnHeaderCheck, ColumnRemarks, ColumnFinalStatus)
	if err := writer.Write(header); err != nil {
		return NewExportError(FormatCSV, len(report.Rows), err)
	}

	for i, row := range report.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		verdict := report.Verdicts[i]
		out := append(originalCells(row, report.Headers, width),
			verdict.HeaderStatus.String(),
			e.Labels.Remarks(verdict),
			e.Labels.FinalStatus(verdict),
		)

		if err := writer.Write(out); err != nil {
			return NewExportError(FormatCSV, len(report.Rows), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return NewExportError(FormatCSV, len(report.Rows), err)
	}
	return nil
}

// originalCells lays out a content row across width columns. Records built
// by name only fill the first column of each header name.
func originalCells(row table.Record, headers []string, width int) []string {
	out := make([]string, width, width+3)
	if cells := row.Row(); cells != nil {
		copy(out, cells)
		return out
	}

	written := make(map[string]bool, len(headers))
	for j, col := range headers {
		if written[col] {
			continue
		}
		written[col] = true
		out[j] = row.Value(col).Raw()
	}
	return out
}
