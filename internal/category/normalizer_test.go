package category

import "testing"

func TestNormalizeAliases(t *testing.T) {
	cases := map[string]Category{
		"fruit":      Fruit,
		"Fruits":     Fruit,
		"  VEGGIES ": Vegetable,
		"greens":     Vegetable,
		"meat":       Protein,
		"eggs":       Protein,
		"milk":       Dairy,
		"Yogurt":     Dairy,
		"grains":     Grain,
		"bread":      Grain,
	}

	for raw, want := range cases {
		got, ok := Normalize(raw)
		if !ok {
			t.Errorf("Normalize(%q): expected recognized", raw)
			continue
		}
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "   ", "chocolate", "healthy_fats", "other"} {
		if cat, ok := Normalize(raw); ok {
			t.Errorf("Normalize(%q) = %q, expected unrecognized", raw, cat)
		}
	}
}

func TestAllIsFixedFiveGroupSet(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 canonical categories, got %d", len(all))
	}

	seen := make(map[Category]bool)
	for _, c := range all {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true

		if got, ok := Normalize(string(c)); !ok || got != c {
			t.Errorf("canonical name %q does not normalize to itself", c)
		}
	}
}
