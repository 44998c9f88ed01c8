package goal

// activityFactors is the single source of truth for activity levels.
var activityFactors = map[string]float64{
	"sedentary":   1.20,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.90,
}

const defaultActivityFactor = 1.55 // moderate

// calorieModifiers adjust maintenance calories per goal type.
var calorieModifiers = map[Type]float64{
	Maintain:           0,
	LoseWeight:         -0.20,
	GainWeight:         0.20,
	DiabetesManagement: 0,
}

// fallbackCalories are used when biometrics are incomplete. No
// partial computation is attempted.
var fallbackCalories = map[Type]int{
	Maintain:           2100,
	LoseWeight:         1650,
	GainWeight:         2750,
	DiabetesManagement: 2000,
}

// noGoalCalories is returned for users with no active goal.
const noGoalCalories = 2000

// computeTarget runs the Mifflin-St Jeor pipeline.
// Truncation happens at each stage in order: BMR stays fractional,
// maintenance truncates after the activity multiplier, the target
// truncates after the goal modifier.
func computeTarget(goalType Type, b *Biometrics) int {
	bmr := 10**b.WeightKg + 6.25**b.HeightCm - 5*float64(*b.Age) + 5

	factor, ok := activityFactors[b.ActivityLevel]
	if !ok {
		factor = defaultActivityFactor
	}
	maintenance := int(bmr * factor)

	target := int(float64(maintenance) * (1 + calorieModifiers[goalType]))
	return target
}
