package category

import "strings"

// Category is one of the five canonical food groups used for
// completion accounting.
type Category string

const (
	Fruit     Category = "fruit"
	Vegetable Category = "vegetable"
	Protein   Category = "protein"
	Dairy     Category = "dairy"
	Grain     Category = "grain"
)

// All returns the canonical categories in display order.
func All() []Category {
	return []Category{Fruit, Vegetable, Protein, Dairy, Grain}
}

// aliases is the single source of truth for category recognition.
// Nothing else in the codebase may compare raw category strings.
var aliases = map[string]Category{
	"fruit":  Fruit,
	"fruits": Fruit,
	"berry":  Fruit,
	"berries": Fruit,

	"vegetable":  Vegetable,
	"vegetables": Vegetable,
	"veggie":     Vegetable,
	"veggies":    Vegetable,
	"greens":     Vegetable,
	"salad":      Vegetable,

	"protein":  Protein,
	"proteins": Protein,
	"meat":     Protein,
	"meats":    Protein,
	"fish":     Protein,
	"seafood":  Protein,
	"egg":      Protein,
	"eggs":     Protein,
	"legume":   Protein,
	"legumes":  Protein,

	"dairy":   Dairy,
	"dairies": Dairy,
	"milk":    Dairy,
	"cheese":  Dairy,
	"yogurt":  Dairy,
	"yoghurt": Dairy,

	"grain":   Grain,
	"grains":  Grain,
	"cereal":  Grain,
	"cereals": Grain,
	"bread":   Grain,
	"rice":    Grain,
	"pasta":   Grain,
	"carb":    Grain,
	"carbs":   Grain,
}

// Normalize maps a free-form category string to its canonical
// category. Unrecognized or empty input returns ok=false; callers
// must treat that as "uncategorized" and exclude it from completion
// accounting rather than guessing.
func Normalize(raw string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	cat, ok := aliases[key]
	return cat, ok
}
