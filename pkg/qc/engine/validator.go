package engine

import (
	"fmt"
	"strings"

	"catalogqc/auditor/pkg/qc/fields"
	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/table"
)

// RowValidator checks content rows of one batch. It caches the header check
// per template and is not safe for concurrent use.
type RowValidator struct {
	idx     *master.Index
	opts    Options
	headers map[string]string // normalized header -> first raw header
	checked map[string]HeaderCheck
	values  map[master.Dataset][]string
}

// NewRowValidator creates a validator for a batch with the given header row.
func NewRowValidator(idx *master.Index, batchHeaders []string, opts Options) *RowValidator {
	v := &RowValidator{
		idx:     idx,
		opts:    opts.withDefaults(),
		headers: make(map[string]string, len(batchHeaders)),
		checked: make(map[string]HeaderCheck),
		values:  make(map[master.Dataset][]string),
	}
	for _, h := range batchHeaders {
		key := table.NormalizeString(h)
		if key == "" {
			continue
		}
		if _, ok := v.headers[key]; !ok {
			v.headers[key] = h
		}
	}
	return v
}

// Validate audits one row against its resolution.
func (v *RowValidator) Validate(row table.Record, res Resolution) RowVerdict {
	diags := NewDiagnosticList()

	categoryOK := v.checkCategory(res, diags)
	templateOK := v.checkTemplate(res, diags)
	header := v.checkHeader(res)
	valueOK := v.checkValues(row, res, diags)

	verdict := RowVerdict{
		Template:       res.DeclaredTemplate,
		CategoryStatus: statusOf(categoryOK),
		TemplateStatus: statusOf(templateOK),
		HeaderStatus:   header,
		ValueStatus:    statusOf(valueOK),
		Diagnostics:    diags.Items,
	}
	verdict.OverallStatus = statusOf(categoryOK && templateOK && header.Status == Passed && valueOK)
	return verdict
}

func (v *RowValidator) checkCategory(res Resolution, diags *DiagnosticList) bool {
	switch {
	case res.TopCategory == "":
		diags.Addf(CheckCategory, v.opts.CategoryColumn, "", "%s missing", v.opts.CategoryColumn)
		return false
	case !res.HasExpected:
		d := Diagnostic{
			Check:   CheckCategory,
			Field:   v.opts.CategoryColumn,
			Value:   res.TopCategory,
			Message: fmt.Sprintf("Category %q unknown", res.TopCategory),
		}
		if v.opts.Suggestions {
			d.Suggestion = suggestValue(res.TopCategory, v.datasetValues(master.DatasetCategories))
		}
		diags.Add(d)
		return false
	}
	return true
}

func (v *RowValidator) checkTemplate(res Resolution, diags *DiagnosticList) bool {
	field := v.opts.TemplateColumns[0]
	switch {
	case res.DeclaredTemplate == "":
		diags.Addf(CheckTemplate, field, "", "Template missing")
		return false
	case res.HasExpected && table.NormalizeString(res.ExpectedTemplate) != table.NormalizeString(res.DeclaredTemplate):
		diags.Addf(CheckTemplate, field, res.DeclaredTemplate, "Template mismatch: expected %q", res.ExpectedTemplate)
		return false
	}
	return true
}

// checkHeader verifies the declared template's mandatory columns exist in the
// batch header. The result depends only on the template, so it is cached.
func (v *RowValidator) checkHeader(res Resolution) HeaderCheck {
	if hc, ok := v.checked[res.DeclaredTemplate]; ok {
		return hc
	}

	var missing []string
	for _, rule := range res.Rules {
		if !rule.Mandatory {
			continue
		}
		if _, ok := v.headers[table.NormalizeString(rule.FieldName)]; !ok {
			missing = append(missing, rule.FieldName)
		}
	}

	hc := HeaderCheck{Status: Passed}
	if len(missing) > 0 {
		hc = HeaderCheck{
			Status:  Failed,
			Missing: missing,
			Message: "Missing mandatory columns: " + strings.Join(missing, ", "),
		}
	}
	v.checked[res.DeclaredTemplate] = hc
	return hc
}

func (v *RowValidator) checkValues(row table.Record, res Resolution, diags *DiagnosticList) bool {
	before := diags.Len()

	for _, rule := range res.Rules {
		raw := v.lookup(row, rule.FieldName).Text()
		if raw == "" {
			if rule.Mandatory {
				diags.Addf(CheckValue, rule.FieldName, "", "Mandatory: %s", rule.FieldName)
			}
			continue
		}

		for _, atom := range v.atoms(rule, raw, diags) {
			v.checkMaster(rule, atom, diags)
			if !rule.Allows(atom) {
				d := Diagnostic{
					Check:   CheckValue,
					Field:   rule.FieldName,
					Value:   atom,
					Message: fmt.Sprintf("%s: %q not allowed", rule.FieldName, atom),
				}
				if v.opts.Suggestions {
					d.Suggestion = suggestValue(atom, rule.AllowedValues)
				}
				diags.Add(d)
			}
		}
	}

	return diags.Len() == before
}

// atoms splits a trimmed cell into the normalized values to check,
// recording delimiter misuse along the way.
func (v *RowValidator) atoms(rule master.FieldRule, raw string, diags *DiagnosticList) []string {
	switch rule.Kind {
	case master.Single:
		if strings.Contains(raw, master.ValueDelimiter) {
			diags.Addf(CheckValue, rule.FieldName, raw, "%s: only one value allowed", rule.FieldName)
		}
		return []string{table.NormalizeString(raw)}

	case master.Multi:
		if v.opts.StrictDelimiters && (strings.Contains(raw, " "+master.ValueDelimiter) || strings.Contains(raw, master.ValueDelimiter+" ")) {
			diags.Addf(CheckValue, rule.FieldName, raw, "%s: pipe spacing error", rule.FieldName)
		}
		parts := strings.Split(raw, master.ValueDelimiter)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if atom := table.NormalizeString(p); atom != "" {
				out = append(out, atom)
			}
		}
		// Empty fragments carry no value to check.
		if v.opts.StrictDelimiters && len(out) < len(parts) {
			diags.Addf(CheckValue, rule.FieldName, raw, "%s: empty value in list", rule.FieldName)
		}
		return out

	default:
		return []string{table.NormalizeString(raw)}
	}
}

// checkMaster applies the brand, color and size lookups selected by the
// rule's column class.
func (v *RowValidator) checkMaster(rule master.FieldRule, atom string, diags *DiagnosticList) {
	var (
		known bool
		label string
		ds    master.Dataset
	)
	switch fields.Classify(rule.FieldName) {
	case fields.Brand:
		known, label, ds = v.idx.HasBrand(atom), "Brand", master.DatasetBrands
	case fields.ColorName:
		known, label, ds = v.idx.HasColor(atom), "Color", master.DatasetColors
	case fields.SizeName:
		known, label, ds = v.idx.HasSize(atom), "Size", master.DatasetSizes
	default:
		return
	}
	if known {
		return
	}

	d := Diagnostic{
		Check:   CheckValue,
		Field:   rule.FieldName,
		Value:   atom,
		Message: fmt.Sprintf("%s %q invalid", label, atom),
	}
	if v.opts.Suggestions {
		d.Suggestion = suggestValue(atom, v.datasetValues(ds))
	}
	diags.Add(d)
}

// lookup reads a field by exact column name, falling back to the batch
// header that normalizes to the same name.
func (v *RowValidator) lookup(row table.Record, field string) table.Value {
	if val, ok := row.Get(field); ok {
		return val
	}
	if raw, ok := v.headers[table.NormalizeString(field)]; ok {
		return row.Value(raw)
	}
	return table.BlankValue()
}

func (v *RowValidator) datasetValues(ds master.Dataset) []string {
	vals, ok := v.values[ds]
	if !ok {
		vals = v.idx.Values(ds)
		v.values[ds] = vals
	}
	return vals
}
