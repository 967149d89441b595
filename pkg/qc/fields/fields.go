// Package fields classifies content-sheet column names into the master
// dataset they are checked against.
package fields

import (
	"strings"

	"catalogqc/auditor/pkg/qc/table"
)

// Class is the master-lookup category of a column.
type Class string

const (
	// Brand columns are checked against the brand master.
	Brand Class = "brand"
	// ColorName columns are checked against the color master.
	ColorName Class = "color_name"
	// SizeName columns are checked against the size master.
	SizeName Class = "size_name"
	// Other columns have no master lookup.
	Other Class = "other"
)

// Predicate reports whether a normalized column name belongs to a class.
type Predicate func(name string) bool

// Rule pairs a class with the predicate that selects it.
type Rule struct {
	Class       Class
	Description string
	Match       Predicate
}

// Rules is the ordered classification table. The first matching rule wins.
// Only name columns are matched; variation or ID columns such as "Color ID"
// fall through to Other.
var Rules = []Rule{
	{
		Class:       Brand,
		Description: `exactly "brand" or "brand name"`,
		Match:       equalsAny("brand", "brand name"),
	},
	{
		Class:       ColorName,
		Description: `contains "color" or "colour", and "name"`,
		Match:       allOf(containsAny("color", "colour"), containsAny("name")),
	},
	{
		Class:       SizeName,
		Description: `contains "size" and "name"`,
		Match:       allOf(containsAny("size"), containsAny("name")),
	},
}

// Classify maps a raw column name to its class.
func Classify(column string) Class {
	name := table.NormalizeString(column)
	for _, r := range Rules {
		if r.Match(name) {
			return r.Class
		}
	}
	return Other
}

func equalsAny(candidates ...string) Predicate {
	return func(name string) bool {
		for _, c := range candidates {
			if name == c {
				return true
			}
		}
		return false
	}
}

func containsAny(parts ...string) Predicate {
	return func(name string) bool {
		for _, p := range parts {
			if strings.Contains(name, p) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...Predicate) Predicate {
	return func(name string) bool {
		for _, p := range preds {
			if !p(name) {
				return false
			}
		}
		return true
	}
}
