package master

import (
	"strings"

	"catalogqc/auditor/pkg/qc/table"
)

// SelectionKind is how many values a field accepts.
type SelectionKind string

const (
	// Single accepts exactly one value; the pipe delimiter is a violation.
	Single SelectionKind = "single"
	// Multi accepts a pipe-delimited list of values.
	Multi SelectionKind = "multi"
	// Open accepts free text without enumeration.
	Open SelectionKind = "open"
)

// ValueDelimiter separates values in multi-valued cells and allowed-value lists.
const ValueDelimiter = "|"

// Column names read from the template-rule sheet, in lookup order.
var (
	ruleTemplateColumns  = []string{"Template Name", "Template"}
	ruleFieldColumns     = []string{"Field Name", "Attribute"}
	ruleTypeColumns      = []string{"Field Type", "Input Type"}
	ruleMandatoryColumns = []string{"Mandatory", "Required"}
	ruleValuesColumns    = []string{"Allowed Values", "Values"}
)

// FieldRule is one validation rule scoped to a template.
type FieldRule struct {
	// TemplateName is the owning template as declared.
	TemplateName string `json:"template_name"`

	// FieldName is the governed column in display form.
	FieldName string `json:"field_name"`

	// FieldType is the normalized raw field-type string the kind was derived from.
	FieldType string `json:"field_type,omitempty"`

	// Kind is the selection kind derived from FieldType.
	Kind SelectionKind `json:"kind"`

	// Mandatory requires a non-blank value.
	Mandatory bool `json:"mandatory"`

	// AllowedValues are normalized permitted values. Empty means unconstrained.
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// Allows reports whether a normalized value is permitted by the rule.
// A rule without allowed values permits everything.
func (r FieldRule) Allows(value string) bool {
	if len(r.AllowedValues) == 0 {
		return true
	}
	for _, v := range r.AllowedValues {
		if v == value {
			return true
		}
	}
	return false
}

// ClassifyKind derives a selection kind from a field-type string by substring match.
func ClassifyKind(fieldType string) SelectionKind {
	t := table.NormalizeString(fieldType)
	switch {
	case strings.Contains(t, "multi"):
		return Multi
	case strings.Contains(t, "select"), strings.Contains(t, "dropdown"):
		return Single
	default:
		return Open
	}
}

// SplitValues splits a pipe-delimited cell into normalized fragments,
// dropping empty ones.
func SplitValues(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ValueDelimiter) {
		if v := table.NormalizeString(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseRule reads a template-rule row. It returns false when the row lacks a
// template or field name.
func parseRule(row table.Record) (FieldRule, bool) {
	templateName := row.FirstText(ruleTemplateColumns...)
	fieldName := row.FirstText(ruleFieldColumns...)
	if templateName == "" || fieldName == "" {
		return FieldRule{}, false
	}

	fieldType := table.NormalizeString(row.FirstText(ruleTypeColumns...))

	return FieldRule{
		TemplateName:  templateName,
		FieldName:     fieldName,
		FieldType:     fieldType,
		Kind:          ClassifyKind(fieldType),
		Mandatory:     table.NormalizeString(row.FirstText(ruleMandatoryColumns...)) == "yes",
		AllowedValues: SplitValues(row.FirstText(ruleValuesColumns...)),
	}, true
}
