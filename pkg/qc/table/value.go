package table

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar variant held by a Value.
type Kind int

const (
	// KindBlank is an empty or absent cell.
	KindBlank Kind = iota
	// KindText is a textual cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "blank"
	}
}

// Value is a single spreadsheet cell.
// The zero Value is blank.
type Value struct {
	kind Kind
	text string
	num  float64
}

// BlankValue returns an empty cell.
func BlankValue() Value {
	return Value{}
}

// TextValue returns a text cell. Text is kept verbatim; use Text to read it trimmed.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue returns a numeric cell. NaN and infinities are treated as blank.
func NumberValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// ParseCell converts a raw cell string from an untyped codec (CSV) into a Value.
// Empty strings become blank. Whitespace-only text is kept verbatim and
// reports IsBlank.
func ParseCell(s string) Value {
	if s == "" {
		return Value{}
	}
	return TextValue(s)
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Raw returns the untrimmed string form of the value.
func (v Value) Raw() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Text returns the trimmed string form of the value.
func (v Value) Text() string {
	return strings.TrimSpace(v.Raw())
}

// Number returns the numeric value and whether the cell holds a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// IsBlank reports whether the value has no visible content.
func (v Value) IsBlank() bool {
	return v.Text() == ""
}

// MarshalJSON encodes blanks as null, numbers as JSON numbers and text as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null, numbers and strings. Booleans are kept as text.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = BlankValue()
	case float64:
		*v = NumberValue(x)
	case string:
		*v = TextValue(x)
	case bool:
		*v = TextValue(strconv.FormatBool(x))
	default:
		*v = TextValue(string(data))
	}
	return nil
}

// Normalize returns the trimmed, lower-cased form of a value.
// Blank values normalize to the empty string.
func Normalize(v Value) string {
	return strings.ToLower(v.Text())
}

// NormalizeString returns the trimmed, lower-cased form of s.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
