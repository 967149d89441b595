package main

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/qc/engine"
	"catalogqc/auditor/pkg/qc/sheet"
	"catalogqc/auditor/pkg/telemetry/logging"
	"catalogqc/auditor/pkg/telemetry/metrics"
	"catalogqc/auditor/pkg/telemetry/tracing"
)

// auditor runs audits for one configuration.
type auditor struct {
	cfg       *config.Config
	engine    *engine.Engine
	exporter  sheet.Exporter
	logger    *logging.Logger
	collector *metrics.Collector
	tracer    *tracing.Tracer

	// progress receives the load progress bar; nil disables it.
	progress io.Writer
}

func newAuditor(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector, tracer *tracing.Tracer) (*auditor, error) {
	exporter, err := sheet.NewExporter(cfg.Report.Format, labelsFromConfig(cfg))
	if err != nil {
		return nil, cli.NewConfigError("report.format", err.Error())
	}
	return &auditor{
		cfg:       cfg,
		engine:    engine.New(optionsFromConfig(cfg), engine.WithLogger(logger.Slog())),
		exporter:  exporter,
		logger:    logger,
		collector: collector,
		tracer:    tracer,
	}, nil
}

func optionsFromConfig(cfg *config.Config) engine.Options {
	return engine.Options{
		CategoryColumn:   cfg.Audit.CategoryColumn,
		TemplateColumns:  cfg.Audit.TemplateColumns,
		StrictDelimiters: cfg.Audit.StrictDelimiters,
		Suggestions:      cfg.Audit.Suggestions,
		ReportPrefix:     cfg.Report.FilePrefix,
		ReportExt:        cfg.Report.Format,
	}
}

func labelsFromConfig(cfg *config.Config) sheet.Labels {
	return sheet.Labels{
		Pass:       cfg.Report.PassLabel,
		Fail:       cfg.Report.FailLabel,
		AllPassed:  cfg.Report.AllPassedRemark,
		MaxSummary: cfg.Report.MaxSummaryDiagnostics,
	}
}

func filesFromConfig(cfg *config.Config) sheet.Files {
	return sheet.Files{
		Brands:        cfg.Inputs.Brands,
		Colors:        cfg.Inputs.Colors,
		Sizes:         cfg.Inputs.Sizes,
		Categories:    cfg.Inputs.Categories,
		TemplateRules: cfg.Inputs.TemplateRules,
		Content:       cfg.Inputs.Content,
	}
}

// Run loads the inputs, audits the content and writes the report.
func (a *auditor) Run(ctx context.Context) (summary *runSummary, err error) {
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, tracing.SpanRun, attribute.String(tracing.AttrInputDir, a.cfg.Inputs.Dir))
	defer func() {
		if err != nil {
			a.collector.RecordRunError(time.Since(start))
		}
		tracing.End(span, err)
	}()

	in, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	_, evalSpan := a.tracer.Start(ctx, tracing.SpanEvaluate)
	report, err := a.engine.Run(in)
	if err == nil {
		evalSpan.SetAttributes(tracing.ReportAttributes(report)...)
	}
	tracing.End(evalSpan, err)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String(tracing.AttrRunID, report.RunID))

	ctx = logging.WithRunID(ctx, report.RunID)
	if traceID := tracing.TraceID(ctx); traceID != "" {
		ctx = logging.WithTraceID(ctx, traceID)
	}
	for _, w := range report.Warnings {
		a.logger.WarnContext(ctx, "Master warning",
			"kind", string(w.Kind),
			"template", w.Template,
			"field", w.Field,
			"message", w.Message,
		)
	}

	exportCtx, exportSpan := a.tracer.Start(ctx, tracing.SpanExport,
		attribute.String(tracing.AttrReportFormat, a.cfg.Report.Format))
	path, err := sheet.WriteFile(exportCtx, a.exporter, report, a.cfg.Report.OutputDir)
	if err == nil {
		exportSpan.SetAttributes(attribute.String(tracing.AttrReportPath, path))
	}
	tracing.End(exportSpan, err)
	if err != nil {
		return nil, err
	}

	duration := time.Since(start)
	a.collector.RecordRun(report, duration)

	a.logger.InfoContext(logging.WithFile(ctx, path), "Audit complete",
		"rows", report.Stats.Total,
		"passed", report.Stats.Passed,
		"failed", report.Stats.Failed,
		"duration_ms", duration.Milliseconds(),
	)
	return newRunSummary(report, path, a.cfg.Report.Format, duration), nil
}

// load reads the six input tables, drawing a progress bar when enabled.
func (a *auditor) load(ctx context.Context) (engine.Inputs, error) {
	ctx, span := a.tracer.Start(ctx, tracing.SpanLoad)

	var bar cli.ProgressReporter
	if a.progress != nil {
		bar = cli.NewProgressReporter(a.progress, "Loading")
		bar.Start(6)
		defer bar.Finish()
	}
	onLoaded := func(name string, done, total int) {
		logging.NewContextLogger(a.logger, logging.WithTable(ctx, name)).Debug("Table loaded",
			"done", done,
			"total", total,
		)
		if bar != nil {
			bar.Update(int64(done))
		}
	}

	in, err := sheet.Load(a.cfg.Inputs.Dir, filesFromConfig(a.cfg), sheet.WithProgress(onLoaded))
	tracing.End(span, err)
	return in, err
}
