// Package table holds the typed tabular records consumed by the QC engine.
//
// Every input sheet (the five masters and the content batch) arrives as a
// Table: the raw header row plus an ordered slice of Records. A Record maps
// column names to Values and remembers column order, so position-based reads
// such as "first column" stay well defined.
//
// # Values
//
// A Value is one of three scalar variants:
//
//	table.BlankValue()      // empty or absent cell
//	table.TextValue("Red")  // free text
//	table.NumberValue(42)   // numeric cell from a typed codec
//
// Value.Text returns the trimmed string form and is the only accessor the
// engine uses to read a cell.
//
// # Normalization
//
// Normalize and NormalizeString produce the trimmed, lower-cased form used as
// the sole equality basis for every cross-sheet comparison:
//
//	table.NormalizeString("  Red ") == "red"
//	table.Normalize(table.BlankValue()) == ""
package table
