package table

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"blank", BlankValue(), ""},
		{"zero value", Value{}, ""},
		{"text padded", TextValue("  Red  "), "red"},
		{"text mixed case", TextValue("Navy Blue"), "navy blue"},
		{"whitespace only", TextValue(" \t "), ""},
		{"integer number", NumberValue(42), "42"},
		{"fractional number", NumberValue(3.5), "3.5"},
		{"nan", NumberValue(math.NaN()), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.value); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeString(t *testing.T) {
	if got := NormalizeString("  SHOES "); got != "shoes" {
		t.Errorf("NormalizeString() = %q, want %q", got, "shoes")
	}
	if got := NormalizeString(""); got != "" {
		t.Errorf("NormalizeString(\"\") = %q, want empty", got)
	}
}

func TestParseCell(t *testing.T) {
	if v := ParseCell(""); v.Kind() != KindBlank {
		t.Errorf("ParseCell(\"\").Kind() = %v, want blank", v.Kind())
	}
	ws := ParseCell("   ")
	if !ws.IsBlank() {
		t.Error("ParseCell(whitespace).IsBlank() = false, want true")
	}
	if ws.Raw() != "   " {
		t.Errorf("ParseCell(whitespace).Raw() = %q, want the spaces kept", ws.Raw())
	}
	v := ParseCell(" Nike ")
	if v.Kind() != KindText {
		t.Fatalf("ParseCell().Kind() = %v, want text", v.Kind())
	}
	if v.Raw() != " Nike " {
		t.Errorf("Raw() = %q, want untrimmed value", v.Raw())
	}
	if v.Text() != "Nike" {
		t.Errorf("Text() = %q, want %q", v.Text(), "Nike")
	}
}

func TestValueJSON(t *testing.T) {
	var values []Value
	if err := json.Unmarshal([]byte(`[null, 7, "M", true]`), &values); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	wantKinds := []Kind{KindBlank, KindNumber, KindText, KindText}
	for i, k := range wantKinds {
		if values[i].Kind() != k {
			t.Errorf("values[%d].Kind() = %v, want %v", i, values[i].Kind(), k)
		}
	}
	if values[3].Text() != "true" {
		t.Errorf("bool cell Text() = %q, want %q", values[3].Text(), "true")
	}

	data, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `[null,7,"M","true"]` {
		t.Errorf("Marshal() = %s", data)
	}
}
