package table

import "encoding/json"

// Record is one row of a sheet: column name to cell value, in column order.
// Column names are kept raw (case and spacing as declared in the header).
type Record struct {
	cells   map[string]Value
	columns []string

	// row is the raw sheet row, including cells under blank or repeated
	// headers that have no name of their own.
	row []string
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{cells: make(map[string]Value)}
}

// RecordFrom builds a record from alternating column/value pairs given as
// strings. It is a convenience for tests and programmatic callers.
func RecordFrom(pairs ...string) Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], ParseCell(pairs[i+1]))
	}
	return r
}

// Set stores a value under column. Setting an existing column replaces its
// value and keeps its original position.
func (r *Record) Set(column string, v Value) {
	if r.cells == nil {
		r.cells = make(map[string]Value)
	}
	if _, ok := r.cells[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.cells[column] = v
}

// SetRow keeps the raw cells of the sheet row the record was read from.
func (r *Record) SetRow(cells []string) {
	r.row = append([]string(nil), cells...)
}

// Row returns the raw cells in sheet order, or nil when the record was
// built by column name.
func (r Record) Row() []string {
	if r.row == nil {
		return nil
	}
	out := make([]string, len(r.row))
	copy(out, r.row)
	return out
}

// Get returns the value stored under column and whether the column exists.
// Absent columns read as blank.
func (r Record) Get(column string) (Value, bool) {
	v, ok := r.cells[column]
	return v, ok
}

// Value returns the value under column, blank if absent.
func (r Record) Value(column string) Value {
	return r.cells[column]
}

// Text returns the trimmed text of column, empty if absent.
func (r Record) Text(column string) string {
	return r.cells[column].Text()
}

// FirstText returns the trimmed text of the first candidate column holding a
// non-blank value.
func (r Record) FirstText(columns ...string) string {
	for _, c := range columns {
		if s := r.Text(c); s != "" {
			return s
		}
	}
	return ""
}

// First returns the value of the first column in declaration order.
func (r Record) First() Value {
	if len(r.columns) == 0 {
		return BlankValue()
	}
	return r.cells[r.columns[0]]
}

// Columns returns the column names in declaration order.
func (r Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns in the record.
func (r Record) Len() int {
	return len(r.columns)
}

// MarshalJSON encodes the record as an object with keys in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, c := range r.columns {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.cells[c])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// Table is one sheet: its raw header row and the records beneath it.
type Table struct {
	// Name identifies the sheet in logs and errors (e.g. "brands").
	Name string `json:"name"`

	// Headers is the raw header row, including duplicates and blanks as declared.
	Headers []string `json:"headers"`

	// Records are the data rows in sheet order.
	Records []Record `json:"records"`
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
