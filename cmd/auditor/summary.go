package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"catalogqc/auditor/pkg/qc/engine"
	"catalogqc/auditor/pkg/qc/master"
)

// runSummary is the printed result of one audit run.
type runSummary struct {
	RunID      string           `json:"run_id"`
	ReportPath string           `json:"report_path"`
	Format     string           `json:"format"`
	Stats      engine.Stats     `json:"stats"`
	Masters    master.Counts    `json:"masters"`
	Warnings   []master.Warning `json:"warnings,omitempty"`
	DurationMS int64            `json:"duration_ms"`
}

func newRunSummary(report *engine.Report, path, format string, duration time.Duration) *runSummary {
	return &runSummary{
		RunID:      report.RunID,
		ReportPath: path,
		Format:     format,
		Stats:      report.Stats,
		Masters:    report.Masters,
		Warnings:   report.Warnings,
		DurationMS: duration.Milliseconds(),
	}
}

// WriteText prints the summary as aligned key/value lines.
func (s *runSummary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	st := s.Stats
	fmt.Fprintf(tw, "Report:\t%s\n", s.ReportPath)
	fmt.Fprintf(tw, "Run ID:\t%s\n", s.RunID)
	fmt.Fprintf(tw, "Rows:\t%d total, %d passed, %d failed\n", st.Total, st.Passed, st.Failed)
	fmt.Fprintf(tw, "Failures:\tcategory %d, template %d, header %d, value %d\n",
		st.CategoryErrors, st.TemplateErrors, st.HeaderErrors, st.ValueErrors)
	fmt.Fprintf(tw, "Masters:\t%s\n", formatCounts(s.Masters))
	fmt.Fprintf(tw, "Duration:\t%dms\n", s.DurationMS)
	if err := tw.Flush(); err != nil {
		return err
	}
	return writeWarnings(w, s.Warnings)
}

// mastersSummary is the output of `masters stats`.
type mastersSummary struct {
	Counts    master.Counts    `json:"counts"`
	Templates []string         `json:"templates"`
	Warnings  []master.Warning `json:"warnings,omitempty"`
}

// WriteText prints the master counts and templates.
func (s *mastersSummary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Masters:\t%s\n", formatCounts(s.Counts))
	fmt.Fprintf(tw, "Templates:\t%s\n", strings.Join(s.Templates, ", "))
	if err := tw.Flush(); err != nil {
		return err
	}
	return writeWarnings(w, s.Warnings)
}

// searchResult is the output of `masters search`.
type searchResult struct {
	Dataset master.Dataset `json:"dataset"`
	Term    string         `json:"term"`
	Matches []string       `json:"matches"`
}

// WriteText prints one match per line.
func (r *searchResult) WriteText(w io.Writer) error {
	if len(r.Matches) == 0 {
		_, err := fmt.Fprintf(w, "No %s match %q\n", r.Dataset, r.Term)
		return err
	}
	for _, m := range r.Matches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}

func formatCounts(c master.Counts) string {
	return fmt.Sprintf("%d brands, %d colors, %d sizes, %d categories, %d templates, %d rules",
		c.Brands, c.Colors, c.Sizes, c.Categories, c.Templates, c.Rules)
}

func writeWarnings(w io.Writer, warnings []master.Warning) error {
	if len(warnings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Warnings (%d):\n", len(warnings)); err != nil {
		return err
	}
	for _, warning := range warnings {
		if _, err := fmt.Fprintf(w, "  ⚠ %s\n", warning.Message); err != nil {
			return err
		}
	}
	return nil
}
