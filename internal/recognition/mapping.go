package recognition

import (
	"strings"

	"github.com/zhu0lin/hack-knight/internal/category"
)

// labelOverrides maps concrete vision labels to a food group when the
// label itself is not a category alias. Keys are lowercase.
var labelOverrides = map[string]category.Category{
	"apple":      category.Fruit,
	"banana":     category.Fruit,
	"orange":     category.Fruit,
	"strawberry": category.Fruit,
	"grape":      category.Fruit,
	"mango":      category.Fruit,
	"pineapple":  category.Fruit,
	"watermelon": category.Fruit,

	"broccoli": category.Vegetable,
	"carrot":   category.Vegetable,
	"tomato":   category.Vegetable,
	"spinach":  category.Vegetable,
	"lettuce":  category.Vegetable,
	"cucumber": category.Vegetable,
	"pepper":   category.Vegetable,
	"produce":  category.Vegetable,

	"chicken": category.Protein,
	"beef":    category.Protein,
	"steak":   category.Protein,
	"pork":    category.Protein,
	"salmon":  category.Protein,
	"tuna":    category.Protein,
	"shrimp":  category.Protein,
	"egg":     category.Protein,
	"tofu":    category.Protein,
	"beans":   category.Protein,

	"butter":    category.Dairy,
	"cream":     category.Dairy,
	"ice cream": category.Dairy,

	"toast":    category.Grain,
	"bagel":    category.Grain,
	"noodle":   category.Grain,
	"oatmeal":  category.Grain,
	"cereal":   category.Grain,
	"tortilla": category.Grain,
	"pizza":    category.Grain,
	"sandwich": category.Grain,
}

// calorieEstimates holds rough per-serving calories for labels we can
// identify precisely. Unknown labels fall back to categoryCalories.
var calorieEstimates = map[string]int{
	"apple":      95,
	"banana":     105,
	"orange":     62,
	"strawberry": 50,
	"broccoli":   55,
	"carrot":     25,
	"salad":      150,
	"chicken":    230,
	"beef":       250,
	"steak":      270,
	"salmon":     208,
	"egg":        78,
	"tofu":       95,
	"milk":       103,
	"cheese":     113,
	"yogurt":     150,
	"bread":      80,
	"toast":      80,
	"rice":       205,
	"pasta":      220,
	"pizza":      285,
	"sandwich":   300,
	"oatmeal":    160,
	"cereal":     150,
}

var categoryCalories = map[category.Category]int{
	category.Fruit:     80,
	category.Vegetable: 50,
	category.Protein:   200,
	category.Dairy:     120,
	category.Grain:     180,
}

// classify maps a raw vision label to a food group. Alias labels go
// through the shared normalizer first, then the override table.
func classify(label string) (category.Category, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if cat, ok := category.Normalize(key); ok {
		return cat, true
	}
	cat, ok := labelOverrides[key]
	return cat, ok
}

func estimateCalories(label string, cat category.Category) int {
	key := strings.ToLower(strings.TrimSpace(label))
	if kcal, ok := calorieEstimates[key]; ok {
		return kcal
	}
	return categoryCalories[cat]
}
