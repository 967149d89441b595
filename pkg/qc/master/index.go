package master

import (
	"fmt"
	"sort"

	"catalogqc/auditor/pkg/qc/table"
)

// Column names read from the category sheet, in lookup order.
var (
	categoryNameColumns     = []string{"Category", "Category Name"}
	categoryTemplateColumns = []string{"Template Name", "Template"}
)

// Sources holds the raw master records an Index is built from.
type Sources struct {
	Brands     []table.Record
	Colors     []table.Record
	Sizes      []table.Record
	Categories []table.Record
	Rules      []table.Record
}

// WarningKind categorizes a data-quality warning raised while building.
type WarningKind string

const (
	// WarningDuplicateRule marks a field declared more than once in a template.
	WarningDuplicateRule WarningKind = "duplicate_rule"
)

// Warning is a non-fatal data-quality issue found in the master sheets.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Template string      `json:"template"`
	Field    string      `json:"field"`
	Message  string      `json:"message"`
}

// Counts summarizes the size of an Index.
type Counts struct {
	Brands     int `json:"brands"`
	Colors     int `json:"colors"`
	Sizes      int `json:"sizes"`
	Categories int `json:"categories"`
	Templates  int `json:"templates"`
	Rules      int `json:"rules"`
}

// Index is the read-only lookup structure built from the master sheets.
// It is safe for concurrent reads.
type Index struct {
	brands             map[string]struct{}
	colors             map[string]struct{}
	sizes              map[string]struct{}
	categoryToTemplate map[string]string
	templateRules      map[string][]FieldRule
	warnings           []Warning
}

// Build constructs an Index from the master records.
func Build(src Sources) *Index {
	idx := &Index{
		brands:             firstColumnSet(src.Brands),
		colors:             firstColumnSet(src.Colors),
		sizes:              firstColumnSet(src.Sizes),
		categoryToTemplate: make(map[string]string),
		templateRules:      make(map[string][]FieldRule),
	}

	for _, row := range src.Categories {
		category := table.NormalizeString(row.FirstText(categoryNameColumns...))
		if category == "" {
			category = table.Normalize(row.First())
		}
		template := row.FirstText(categoryTemplateColumns...)
		if category == "" || template == "" {
			continue
		}
		idx.categoryToTemplate[category] = template
	}

	// position tracks where each (template, normalized field) sits in its rule list.
	position := make(map[string]map[string]int)
	for _, row := range src.Rules {
		rule, ok := parseRule(row)
		if !ok {
			continue
		}
		key := table.NormalizeString(rule.FieldName)
		fieldsSeen, ok := position[rule.TemplateName]
		if !ok {
			fieldsSeen = make(map[string]int)
			position[rule.TemplateName] = fieldsSeen
		}
		if at, dup := fieldsSeen[key]; dup {
			idx.templateRules[rule.TemplateName][at] = rule
			idx.warnings = append(idx.warnings, Warning{
				Kind:     WarningDuplicateRule,
				Template: rule.TemplateName,
				Field:    rule.FieldName,
				Message: fmt.Sprintf("template %q declares field %q more than once; last declaration wins",
					rule.TemplateName, rule.FieldName),
			})
			continue
		}
		fieldsSeen[key] = len(idx.templateRules[rule.TemplateName])
		idx.templateRules[rule.TemplateName] = append(idx.templateRules[rule.TemplateName], rule)
	}

	return idx
}

func firstColumnSet(rows []table.Record) map[string]struct{} {
	set := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if v := table.Normalize(row.First()); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// HasBrand reports whether the normalized value is a known brand.
func (idx *Index) HasBrand(value string) bool {
	_, ok := idx.brands[value]
	return ok
}

// HasColor reports whether the normalized value is a known color.
func (idx *Index) HasColor(value string) bool {
	_, ok := idx.colors[value]
	return ok
}

// HasSize reports whether the normalized value is a known size.
func (idx *Index) HasSize(value string) bool {
	_, ok := idx.sizes[value]
	return ok
}

// TemplateFor returns the expected template for a normalized top-level category.
func (idx *Index) TemplateFor(category string) (string, bool) {
	t, ok := idx.categoryToTemplate[category]
	return t, ok
}

// Rules returns the ordered rules of a template, keyed case-sensitively as declared.
// Unknown templates yield nil. The returned slice is a copy.
func (idx *Index) Rules(template string) []FieldRule {
	rules := idx.templateRules[template]
	if len(rules) == 0 {
		return nil
	}
	out := make([]FieldRule, len(rules))
	copy(out, rules)
	return out
}

// Templates returns the declared template names in sorted order.
func (idx *Index) Templates() []string {
	names := make([]string, 0, len(idx.templateRules))
	for name := range idx.templateRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warnings returns data-quality warnings raised during Build.
func (idx *Index) Warnings() []Warning {
	out := make([]Warning, len(idx.warnings))
	copy(out, idx.warnings)
	return out
}

// Counts returns the number of entries in each part of the index.
func (idx *Index) Counts() Counts {
	c := Counts{
		Brands:     len(idx.brands),
		Colors:     len(idx.colors),
		Sizes:      len(idx.sizes),
		Categories: len(idx.categoryToTemplate),
		Templates:  len(idx.templateRules),
	}
	for _, rules := range idx.templateRules {
		c.Rules += len(rules)
	}
	return c
}
