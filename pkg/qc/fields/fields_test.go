package fields

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		column string
		want   Class
	}{
		{"Brand", Brand},
		{"  brand name ", Brand},
		{"Brand Code", Other},
		{"Color Name", ColorName},
		{"Colour Name", ColorName},
		{"Primary Color Name", ColorName},
		{"Color", Other},
		{"Color ID", Other},
		{"Size Name", SizeName},
		{"size_name", SizeName},
		{"Size", Other},
		{"Product Name", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := Classify(tt.column); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}

func TestRules_OrderedAndDescribed(t *testing.T) {
	want := []Class{Brand, ColorName, SizeName}
	if len(Rules) != len(want) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(want))
	}
	for i, r := range Rules {
		if r.Class != want[i] {
			t.Errorf("Rules[%d].Class = %q, want %q", i, r.Class, want[i])
		}
		if r.Description == "" {
			t.Errorf("Rules[%d] has no description", i)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Matches both the color and size predicates; color is listed first.
	if got := Classify("Color Size Name"); got != ColorName {
		t.Errorf("Classify() = %q, want %q", got, ColorName)
	}
}
