package engine

// Separators used when composing and parsing row values.
const (
	// HierarchyDelimiter separates category levels, e.g. "Shoes>Running".
	HierarchyDelimiter = ">"

	// RemarkSeparator joins diagnostics into a single remark string.
	RemarkSeparator = " | "
)

// Default column names and report naming.
const (
	DefaultCategoryColumn = "1st Category"
	DefaultReportPrefix   = "QC_Report"
	DefaultReportExt      = "csv"
)

// DefaultTemplateColumns are the content columns a row declares its template in.
var DefaultTemplateColumns = []string{"Template Name", "Template"}

// Options controls how content rows are read and validated.
type Options struct {
	// CategoryColumn holds the ">"-delimited category path of a row.
	CategoryColumn string

	// TemplateColumns hold the declared template name, first non-blank wins.
	TemplateColumns []string

	// StrictDelimiters flags multi-value cells with spaces around the pipe
	// delimiter ("red | blue").
	StrictDelimiters bool

	// Suggestions attaches "did you mean" hints to rejected values.
	Suggestions bool

	// ReportPrefix and ReportExt shape the suggested report file name.
	ReportPrefix string
	ReportExt    string
}

// DefaultOptions returns the options matching the standard content template.
func DefaultOptions() Options {
	return Options{
		CategoryColumn:  DefaultCategoryColumn,
		TemplateColumns: append([]string(nil), DefaultTemplateColumns...),
		Suggestions:     true,
		ReportPrefix:    DefaultReportPrefix,
		ReportExt:       DefaultReportExt,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CategoryColumn == "" {
		o.CategoryColumn = d.CategoryColumn
	}
	if len(o.TemplateColumns) == 0 {
		o.TemplateColumns = d.TemplateColumns
	}
	if o.ReportPrefix == "" {
		o.ReportPrefix = d.ReportPrefix
	}
	if o.ReportExt == "" {
		o.ReportExt = d.ReportExt
	}
	return o
}
