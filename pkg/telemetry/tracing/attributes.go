package tracing

import (
	"go.opentelemetry.io/otel/attribute"

	"catalogqc/auditor/pkg/qc/engine"
)

// Attribute keys of audit spans.
const (
	AttrRunID          = "audit.run_id"
	AttrInputDir       = "audit.input_dir"
	AttrRowsTotal      = "audit.rows.total"
	AttrRowsPassed     = "audit.rows.passed"
	AttrRowsFailed     = "audit.rows.failed"
	AttrTemplates      = "audit.masters.templates"
	AttrRules          = "audit.masters.rules"
	AttrWarnings       = "audit.masters.warnings"
	AttrReportPath     = "audit.report.path"
	AttrReportFormat   = "audit.report.format"
	AttrCategoryErrors = "audit.failures.category"
	AttrTemplateErrors = "audit.failures.template"
	AttrHeaderErrors   = "audit.failures.header"
	AttrValueErrors    = "audit.failures.value"
)

// ReportAttributes describes a finished audit.
func ReportAttributes(report *engine.Report) []attribute.KeyValue {
	st := report.Stats
	return []attribute.KeyValue{
		attribute.String(AttrRunID, report.RunID),
		attribute.Int(AttrRowsTotal, st.Total),
		attribute.Int(AttrRowsPassed, st.Passed),
		attribute.Int(AttrRowsFailed, st.Failed),
		attribute.Int(AttrCategoryErrors, st.CategoryErrors),
		attribute.Int(AttrTemplateErrors, st.TemplateErrors),
		attribute.Int(AttrHeaderErrors, st.HeaderErrors),
		attribute.Int(AttrValueErrors, st.ValueErrors),
		attribute.Int(AttrTemplates, report.Masters.Templates),
		attribute.Int(AttrRules, report.Masters.Rules),
		attribute.Int(AttrWarnings, len(report.Warnings)),
	}
}
