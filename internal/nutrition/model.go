package nutrition

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
)

var (
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")

	// ErrInconsistentSummary marks a summary whose completion is not a
	// multiple of 20. It indicates an aggregator bug and is never
	// silently corrected.
	ErrInconsistentSummary = errors.New("summary completion percentage is not a multiple of 20")
)

// Summary is the cached per-(user, day) aggregate of food log
// entries. It is derived, never authoritative: recomputing from the
// log set must always reproduce it.
type Summary struct {
	UserID               string    `json:"user_id"`
	Date                 time.Time `json:"-"`
	FruitsCount          int       `json:"fruits_count"`
	VegetablesCount      int       `json:"vegetables_count"`
	ProteinCount         int       `json:"protein_count"`
	DairyCount           int       `json:"dairy_count"`
	GrainsCount          int       `json:"grains_count"`
	TotalCalories        int       `json:"total_calories"`
	CompletionPercentage int       `json:"completion_percentage"`
}

// MarshalJSON emits the date as a plain calendar day; no caller needs
// the time component and the API promises YYYY-MM-DD.
func (s *Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	return json.Marshal(struct {
		Date string `json:"date"`
		*alias
	}{
		Date:  FormatDay(s.Date),
		alias: (*alias)(s),
	})
}

// Count returns the counter for one canonical category.
func (s *Summary) Count(c category.Category) int {
	switch c {
	case category.Fruit:
		return s.FruitsCount
	case category.Vegetable:
		return s.VegetablesCount
	case category.Protein:
		return s.ProteinCount
	case category.Dairy:
		return s.DairyCount
	case category.Grain:
		return s.GrainsCount
	}
	return 0
}

func (s *Summary) addCount(c category.Category) {
	switch c {
	case category.Fruit:
		s.FruitsCount++
	case category.Vegetable:
		s.VegetablesCount++
	case category.Protein:
		s.ProteinCount++
	case category.Dairy:
		s.DairyCount++
	case category.Grain:
		s.GrainsCount++
	}
}

// Complete reports whether all five food groups were logged.
func (s *Summary) Complete() bool {
	return s.CompletionPercentage == 100
}

// Validate catches aggregator bugs before a summary is served.
func (s *Summary) Validate() error {
	if s.CompletionPercentage < 0 || s.CompletionPercentage > 100 ||
		s.CompletionPercentage%20 != 0 {
		return fmt.Errorf("%w: %d", ErrInconsistentSummary, s.CompletionPercentage)
	}
	return nil
}

// Streak tracks consecutive fully-complete days. Derived from the log
// set; the stored row is a read cache only.
type Streak struct {
	UserID           string     `json:"user_id"`
	Current          int        `json:"current_streak"`
	Longest          int        `json:"longest_streak"`
	LastCompleteDate *time.Time `json:"last_complete_date,omitempty"`
}

func (s *Streak) MarshalJSON() ([]byte, error) {
	var last *string
	if s.LastCompleteDate != nil {
		d := FormatDay(*s.LastCompleteDate)
		last = &d
	}
	return json.Marshal(struct {
		UserID           string  `json:"user_id"`
		Current          int     `json:"current_streak"`
		Longest          int     `json:"longest_streak"`
		LastCompleteDate *string `json:"last_complete_date"`
	}{s.UserID, s.Current, s.Longest, last})
}

// WeekSummary is seven daily summaries plus aggregates, as served by
// the weekly analytics endpoint.
type WeekSummary struct {
	WeekStart         time.Time  `json:"-"`
	WeekEnd           time.Time  `json:"-"`
	Days              []*Summary `json:"daily_summaries"`
	AverageCompletion float64    `json:"average_completion"`
	TotalLogs         int        `json:"total_logs"`
}

func (w *WeekSummary) MarshalJSON() ([]byte, error) {
	type alias WeekSummary
	return json.Marshal(struct {
		WeekStart string `json:"week_start"`
		WeekEnd   string `json:"week_end"`
		*alias
	}{
		WeekStart: FormatDay(w.WeekStart),
		WeekEnd:   FormatDay(w.WeekEnd),
		alias:     (*alias)(w),
	})
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO-8601 calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDay renders a calendar date as ISO-8601.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
