package engine

import (
	"strings"

	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/table"
)

// Resolution is the rule context of one content row.
type Resolution struct {
	// TopCategory is the normalized first segment of the category path.
	TopCategory string

	// ExpectedTemplate is the template mapped to TopCategory, if HasExpected.
	ExpectedTemplate string
	HasExpected      bool

	// DeclaredTemplate is the row's own template name, trimmed.
	DeclaredTemplate string

	// Rules are the declared template's rules; empty for unknown templates.
	Rules []master.FieldRule
}

// Resolve determines which rule set applies to a row.
func Resolve(row table.Record, idx *master.Index, opts Options) Resolution {
	opts = opts.withDefaults()

	categoryPath := row.Value(opts.CategoryColumn).Raw()
	top, _, _ := strings.Cut(categoryPath, HierarchyDelimiter)

	res := Resolution{
		TopCategory:      table.NormalizeString(top),
		DeclaredTemplate: row.FirstText(opts.TemplateColumns...),
	}
	res.ExpectedTemplate, res.HasExpected = idx.TemplateFor(res.TopCategory)
	res.Rules = idx.Rules(res.DeclaredTemplate)
	return res
}
