package goal

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidGoalType = errors.New("invalid goal type, use maintain|lose_weight|gain_weight|diabetes_management")
	ErrInvalidCalories = errors.New("target calories must be positive")

	// ErrMultipleActiveGoals means the single-active-goal invariant
	// was violated by a bad store transition. It is a bug, not a user
	// error.
	ErrMultipleActiveGoals = errors.New("more than one active goal for user")
)

// Type is the user's stated nutritional objective.
type Type string

const (
	Maintain           Type = "maintain"
	LoseWeight         Type = "lose_weight"
	GainWeight         Type = "gain_weight"
	DiabetesManagement Type = "diabetes_management"
)

// ParseType validates a raw goal type string.
func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case Maintain, LoseWeight, GainWeight, DiabetesManagement:
		return Type(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGoalType, raw)
}

// Goal is one row of user_goals. At most one row per user is active
// at any time.
type Goal struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           Type      `json:"goal_type"`
	TargetCalories *int      `json:"target_calories,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Biometrics feed the calorie target calculation. All three of
// WeightKg, HeightCm and Age must be present for a computed target;
// anything less falls back to the per-goal default.
type Biometrics struct {
	WeightKg      *float64 `json:"weight_kg"`
	HeightCm      *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	ActivityLevel string   `json:"activity_level"`
}

// Complete reports whether BMR can be computed.
func (b *Biometrics) Complete() bool {
	return b != nil && b.WeightKg != nil && b.HeightCm != nil && b.Age != nil
}

// Plan is the per-goal recommendation bundle served by the
// recommendations endpoint and consumed by the advice builder.
type Plan struct {
	Title           string            `json:"title"`
	DailyCalories   string            `json:"daily_calories"`
	Focus           []string          `json:"focus"`
	Tips            string            `json:"tips"`
	Macros          map[string]string `json:"macros"`
	PriorityGroups  []string          `json:"priority_groups"`
	CalorieModifier float64           `json:"-"`
}
