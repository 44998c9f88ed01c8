package food

import (
	"errors"
	"fmt"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
)

var (
	ErrNegativeCalories   = errors.New("calories must not be negative")
	ErrUnknownCategory    = errors.New("unrecognized food category")
	ErrMissingUser        = errors.New("missing user id")
	ErrMissingFoodName    = errors.New("missing detected food name")
	ErrInvalidMealType    = errors.New("invalid meal type, use breakfast|lunch|dinner|snack")
	ErrUnparsableLoggedAt = errors.New("logged_at is not a timestamp or date")
)

// Entry is one immutable food log record. Created once per recognized
// food, never mutated, deletable by its owner.
type Entry struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Category     category.Category `json:"food_category"`
	DetectedName string            `json:"detected_food_name"`
	ImageURL     string            `json:"image_url,omitempty"`
	Calories     *int              `json:"calories,omitempty"`
	MealType     string            `json:"meal_type,omitempty"`
	LoggedAt     time.Time         `json:"logged_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// Validate rejects malformed entries before they reach the store.
func (e *Entry) Validate() error {
	if e.UserID == "" {
		return ErrMissingUser
	}
	if e.DetectedName == "" {
		return ErrMissingFoodName
	}
	if _, ok := category.Normalize(string(e.Category)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
	}
	if e.Calories != nil && *e.Calories < 0 {
		return ErrNegativeCalories
	}
	if e.MealType != "" && !mealTypes[e.MealType] {
		return ErrInvalidMealType
	}
	return nil
}

// ParseLoggedAt accepts RFC3339 timestamps, timestamps without a zone
// suffix, or plain dates. As a last resort the first 10 characters are
// read as YYYY-MM-DD, so a timestamp in an unexpected shape still
// lands on the right calendar day.
func ParseLoggedAt(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableLoggedAt, s)
}
