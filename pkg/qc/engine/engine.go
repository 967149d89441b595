package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/table"
)

var (
	// ErrMissingTable is returned when a required input table is absent.
	ErrMissingTable = errors.New("required input table missing")

	// ErrMissingIndex is returned when Audit is given no master index.
	ErrMissingIndex = errors.New("master index missing")
)

// Inputs are the six tables of one audit run.
type Inputs struct {
	Brands        *table.Table
	Colors        *table.Table
	Sizes         *table.Table
	Categories    *table.Table
	TemplateRules *table.Table
	Content       *table.Table
}

// Validate checks that every table is present.
func (in Inputs) Validate() error {
	var missing []string
	for _, t := range []struct {
		name  string
		table *table.Table
	}{
		{"brands", in.Brands},
		{"colors", in.Colors},
		{"sizes", in.Sizes},
		{"categories", in.Categories},
		{"template_rules", in.TemplateRules},
		{"content", in.Content},
	} {
		if t.table == nil {
			missing = append(missing, t.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTable, strings.Join(missing, ", "))
	}
	return nil
}

// Sources returns the master records of the inputs.
func (in Inputs) Sources() master.Sources {
	return master.Sources{
		Brands:     in.Brands.Records,
		Colors:     in.Colors.Records,
		Sizes:      in.Sizes.Records,
		Categories: in.Categories.Records,
		Rules:      in.TemplateRules.Records,
	}
}

// Engine runs audits. It holds no state between runs and is safe for
// concurrent use.
type Engine struct {
	opts   Options
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides run ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithLogger sets the logger for run summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine with the given options.
func New(opts Options, options ...Option) *Engine {
	e := &Engine{
		opts:   opts.withDefaults(),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: slog.Default(),
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Options returns the effective options of the engine.
func (e *Engine) Options() Options {
	return e.opts
}

// Run builds the master index and audits every content row.
// It fails only when an input table is missing.
func (e *Engine) Run(in Inputs) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	idx := master.Build(in.Sources())
	return e.Audit(idx, in.Content)
}

// Audit validates a content table against a prebuilt index.
func (e *Engine) Audit(idx *master.Index, content *table.Table) (*Report, error) {
	if idx == nil {
		return nil, ErrMissingIndex
	}
	if content == nil {
		return nil, fmt.Errorf("%w: content", ErrMissingTable)
	}

	validator := NewRowValidator(idx, content.Headers, e.opts)

	verdicts := make([]RowVerdict, len(content.Records))
	for i, row := range content.Records {
		verdicts[i] = validator.Validate(row, Resolve(row, idx, e.opts))
	}

	generatedAt := e.now()
	runID := e.newID()
	report := &Report{
		RunID:             runID,
		GeneratedAt:       generatedAt,
		SuggestedFileName: e.fileName(generatedAt, runID),
		Headers:           append([]string(nil), content.Headers...),
		Rows:              content.Records,
		Verdicts:          verdicts,
		Stats:             Tally(verdicts),
		Masters:           idx.Counts(),
		Warnings:          idx.Warnings(),
	}

	e.logger.Debug("Audit complete",
		"run_id", runID,
		"rows", report.Stats.Total,
		"passed", report.Stats.Passed,
		"failed", report.Stats.Failed,
	)
	return report, nil
}

// fileName builds a per-run report name such as QC_Report_20250115_103000_1a2b3c4d.csv.
func (e *Engine) fileName(at time.Time, runID string) string {
	suffix := strings.ReplaceAll(runID, "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	name := fmt.Sprintf("%s_%s", e.opts.ReportPrefix, at.Format("20060102_150405"))
	if suffix != "" {
		name += "_" + suffix
	}
	return name + "." + strings.TrimPrefix(e.opts.ReportExt, ".")
}
