package auth

import "time"

// User is the domain entity. Biometrics are optional and feed the
// calorie target calculation.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"-"`

	CurrentWeightKg *float64 `json:"current_weight,omitempty"`
	TargetWeightKg  *float64 `json:"target_weight,omitempty"`
	HeightCm        *float64 `json:"height,omitempty"`
	Age             *int     `json:"age,omitempty"`
	ActivityLevel   string   `json:"activity_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Profile carries a partial update: nil fields are left untouched.
type Profile struct {
	FullName        *string  `json:"full_name"`
	CurrentWeightKg *float64 `json:"current_weight"`
	TargetWeightKg  *float64 `json:"target_weight"`
	HeightCm        *float64 `json:"height"`
	Age             *int     `json:"age"`
	ActivityLevel   *string  `json:"activity_level"`
}
