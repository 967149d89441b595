// Package sheet reads audit inputs from CSV files and writes audit reports.
//
// # Reading
//
// ReadCSV turns a CSV stream into a table.Table. The first row is the header
// row; it is kept verbatim (duplicates and blanks included) because the header
// check inspects it. Cells are parsed with table.ParseCell, so whitespace-only
// cells read as blank while keeping their text. Each record also keeps its raw
// row, which the CSV exporter re-emits cell by cell. A UTF-8 byte order mark is
// stripped and ragged rows are accepted.
//
//	tbl, err := sheet.LoadFile("masters/brands.csv")
//
// Load reads the six inputs of a run from a directory:
//
//	in, err := sheet.Load("data", sheet.DefaultFiles())
//	report, err := engine.New(engine.DefaultOptions()).Run(in)
//
// # Export Formats
//
//   - CSV: the content rows with QC Header Check, QC Remarks and QC Final
//     Status appended
//   - JSON: the complete report, with optional pretty-printing
//
// Exporters return *ExportError when writing fails.
package sheet
