package goal

// plans bundles the per-goal recommendation content. CalorieModifier
// here mirrors calorieModifiers and exists so the served plan and the
// calculator can never disagree on direction.
var plans = map[Type]Plan{
	LoseWeight: {
		Title:         "Weight Loss Plan",
		DailyCalories: "1,500-1,800 calories",
		Focus: []string{
			"High protein intake (lean meats, fish, eggs)",
			"Plenty of vegetables and leafy greens",
			"Moderate fruits (2-3 servings)",
			"Whole grains in small portions",
			"Low-fat dairy products",
		},
		Tips: "Focus on nutrient-dense, low-calorie foods. Prioritize vegetables and lean protein to stay full longer. Limit high-calorie foods and sugary drinks.",
		Macros: map[string]string{
			"protein": "30-35%",
			"carbs":   "35-40%",
			"fat":     "25-30%",
		},
		PriorityGroups:  []string{"vegetable", "protein", "fruit"},
		CalorieModifier: -0.20,
	},
	GainWeight: {
		Title:         "Weight Gain Plan",
		DailyCalories: "2,500-3,000 calories",
		Focus: []string{
			"High protein foods (meats, eggs, protein shakes)",
			"Complex carbohydrates (whole grains, rice, pasta)",
			"Healthy fats (nuts, avocado, olive oil)",
			"Full-fat dairy products",
			"Frequent meals and snacks",
		},
		Tips: "Eat calorie-dense foods and increase portion sizes. Add healthy fats to meals. Don't skip meals and consider protein shakes between meals.",
		Macros: map[string]string{
			"protein": "25-30%",
			"carbs":   "45-50%",
			"fat":     "25-30%",
		},
		PriorityGroups:  []string{"protein", "grain", "dairy"},
		CalorieModifier: 0.20,
	},
	Maintain: {
		Title:         "Maintenance Plan",
		DailyCalories: "2,000-2,200 calories",
		Focus: []string{
			"Balanced portions from all food groups",
			"Variety of fruits and vegetables",
			"Lean proteins and whole grains",
			"Moderate dairy intake",
			"Occasional treats in moderation",
		},
		Tips: "Maintain a balanced diet with all food groups represented daily. Focus on consistency rather than restriction.",
		Macros: map[string]string{
			"protein": "20-25%",
			"carbs":   "45-50%",
			"fat":     "25-30%",
		},
		PriorityGroups:  []string{"vegetable", "fruit", "protein", "grain", "dairy"},
		CalorieModifier: 0,
	},
	DiabetesManagement: {
		Title:         "Diabetes Management Plan",
		DailyCalories: "1,800-2,200 calories",
		Focus: []string{
			"Low glycemic index foods",
			"High fiber vegetables",
			"Lean proteins",
			"Whole grains instead of refined",
			"Limited fruits (focus on berries)",
		},
		Tips: "Monitor carbohydrate intake carefully. Choose complex carbs over simple sugars. Eat regular meals to maintain stable blood sugar.",
		Macros: map[string]string{
			"protein": "25-30%",
			"carbs":   "40-45%",
			"fat":     "25-30%",
		},
		PriorityGroups:  []string{"vegetable", "protein", "grain"},
		CalorieModifier: 0,
	},
}

// PlanFor returns the recommendation plan for a goal type, defaulting
// to the maintenance plan for anything unrecognized.
func PlanFor(goalType Type) Plan {
	if p, ok := plans[goalType]; ok {
		return p
	}
	return plans[Maintain]
}
