package nutrition

import (
	"sort"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
	"github.com/zhu0lin/hack-knight/internal/food"
)

// completeDays returns the deduplicated calendar days on which all
// five canonical categories were logged, as UTC midnights. Multiple
// entries on one day contribute to that day's completeness, never to
// separate streak units.
func completeDays(entries []*food.Entry) []time.Time {
	byDay := make(map[string]map[category.Category]bool)
	for _, e := range entries {
		cat, ok := category.Normalize(string(e.Category))
		if !ok {
			continue
		}
		day := FormatDay(e.LoggedAt)
		if byDay[day] == nil {
			byDay[day] = make(map[category.Category]bool)
		}
		byDay[day][cat] = true
	}

	var days []time.Time
	for day, cats := range byDay {
		if len(cats) == len(category.All()) {
			t, err := ParseDay(day)
			if err != nil {
				continue
			}
			days = append(days, t)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// currentStreak counts consecutive complete days ending at or
// adjacent to asOf. A most recent complete day more than one day
// before asOf means the streak is no longer live and counts as 0.
func currentStreak(complete []time.Time, asOf time.Time) int {
	if len(complete) == 0 {
		return 0
	}

	latest := complete[len(complete)-1]
	if latest.Before(asOf.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := len(complete) - 2; i >= 0; i-- {
		if !complete[i].Equal(complete[i+1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// longestStreak scans complete days in ascending order, resetting the
// running run whenever two days are not exactly one apart.
func longestStreak(complete []time.Time) int {
	longest, run := 0, 0
	var prev time.Time

	for i, day := range complete {
		if i == 0 || day.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

func latestDay(complete []time.Time) (time.Time, bool) {
	if len(complete) == 0 {
		return time.Time{}, false
	}
	return complete[len(complete)-1], true
}
