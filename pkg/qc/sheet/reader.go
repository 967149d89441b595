package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catalogqc/auditor/pkg/qc/engine"
	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a CSV stream into a table. Rows whose cells are all blank are
// skipped. When a header repeats, the first occurrence names the cell; every
// cell stays available positionally through Record.Row.
func ReadCSV(name string, r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	tbl := &table.Table{Name: name, Headers: header}
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec, ok := toRecord(header, fields); ok {
			tbl.Records = append(tbl.Records, rec)
		}
	}
	return tbl, nil
}

func toRecord(header, fields []string) (table.Record, bool) {
	rec := table.NewRecord()
	seen := make(map[string]bool, len(header))
	for i, col := range header {
		if strings.TrimSpace(col) == "" || seen[col] {
			continue
		}
		seen[col] = true

		v := table.BlankValue()
		if i < len(fields) {
			v = table.ParseCell(fields[i])
		}
		rec.Set(col, v)
	}
	rec.SetRow(fields)

	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return rec, true
		}
	}
	return rec, false
}

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// LoadFile reads a CSV file. The table is named after the file without its
// extension.
func LoadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ReadCSV(name, f)
}

// Files names the six input files of a run, relative to the input directory
// unless absolute.
type Files struct {
	Brands        string
	Colors        string
	Sizes         string
	Categories    string
	TemplateRules string
	Content       string
}

// DefaultFiles returns the conventional input file names.
func DefaultFiles() Files {
	return Files{
		Brands:        "brands.csv",
		Colors:        "colors.csv",
		Sizes:         "sizes.csv",
		Categories:    "categories.csv",
		TemplateRules: "template_rules.csv",
		Content:       "content.csv",
	}
}

// Paths resolves the file names against dir, in a fixed order.
func (f Files) Paths(dir string) []string {
	names := []string{f.Brands, f.Colors, f.Sizes, f.Categories, f.TemplateRules, f.Content}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = resolve(dir, n)
	}
	return out
}

func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	onLoaded func(table string, done, total int)
}

// WithProgress calls fn after each table is read.
func WithProgress(fn func(table string, done, total int)) LoadOption {
	return func(o *loadOptions) { o.onLoaded = fn }
}

type tableSpec struct {
	name string
	file string
	dst  **table.Table
}

// specs lists the tables of a run in load order; content comes last.
func (f Files) specs(in *engine.Inputs) []tableSpec {
	return []tableSpec{
		{"brands", f.Brands, &in.Brands},
		{"colors", f.Colors, &in.Colors},
		{"sizes", f.Sizes, &in.Sizes},
		{"categories", f.Categories, &in.Categories},
		{"template_rules", f.TemplateRules, &in.TemplateRules},
		{"content", f.Content, &in.Content},
	}
}

// Load reads the six inputs of a run. It stops at the first unreadable file
// and returns a *ReadError naming it.
func Load(dir string, files Files, opts ...LoadOption) (engine.Inputs, error) {
	var in engine.Inputs
	if err := loadTables(dir, files.specs(&in), opts); err != nil {
		return engine.Inputs{}, err
	}
	return in, nil
}

// LoadMasters reads the five master tables, skipping content.
func LoadMasters(dir string, files Files, opts ...LoadOption) (master.Sources, error) {
	var in engine.Inputs
	specs := files.specs(&in)
	if err := loadTables(dir, specs[:len(specs)-1], opts); err != nil {
		return master.Sources{}, err
	}
	return in.Sources(), nil
}

func loadTables(dir string, specs []tableSpec, opts []LoadOption) error {
	var lo loadOptions
	for _, o := range opts {
		o(&lo)
	}

	for i, t := range specs {
		path := resolve(dir, t.file)
		if path == "" {
			return &ReadError{Table: t.name, Cause: engine.ErrMissingTable}
		}
		tbl, err := LoadFile(path)
		if err != nil {
			return &ReadError{Table: t.name, Path: path, Cause: err}
		}
		tbl.Name = t.name
		*t.dst = tbl
		if lo.onLoaded != nil {
			lo.onLoaded(t.name, i+1, len(specs))
		}
	}
	return nil
}
