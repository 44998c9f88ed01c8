package nutrition

import (
	"context"
	"testing"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
	"github.com/zhu0lin/hack-knight/internal/food"
)

// logCompleteDay records one entry per canonical category on the
// given day.
func logCompleteDay(t *testing.T, svc *Service, userID string, day time.Time) {
	t.Helper()
	for _, cat := range category.All() {
		mustRecord(t, svc, userID, string(cat), cat, day, nil)
	}
}

func TestStreakWalksBackFromYesterday(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(today)

	// D-2 and D-1 complete, D-3 partial, today empty.
	logCompleteDay(t, svc, "u1", today.AddDate(0, 0, -2))
	logCompleteDay(t, svc, "u1", today.AddDate(0, 0, -1))
	mustRecord(t, svc, "u1", "Apple", category.Fruit, today.AddDate(0, 0, -3), nil)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 2 {
		t.Errorf("current = %d, want 2", streak.Current)
	}
	if streak.Longest != 2 {
		t.Errorf("longest = %d, want 2", streak.Longest)
	}
	if streak.LastCompleteDate == nil || !streak.LastCompleteDate.Equal(Day(today.AddDate(0, 0, -1))) {
		t.Errorf("last complete date = %v, want %v", streak.LastCompleteDate, Day(today.AddDate(0, 0, -1)))
	}
}

func TestStaleStreakIsBroken(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(today)

	// Five complete days, but the run ended three days ago.
	for d := 3; d <= 7; d++ {
		logCompleteDay(t, svc, "u1", today.AddDate(0, 0, -d))
	}

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 0 {
		t.Errorf("current = %d, want 0 (streak not live)", streak.Current)
	}
	if streak.Longest != 5 {
		t.Errorf("longest = %d, want 5", streak.Longest)
	}
}

func TestLongestStreakSpansGaps(t *testing.T) {
	today := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(today)

	// Run of 3 long ago, gap, then today and yesterday.
	for d := 10; d <= 12; d++ {
		logCompleteDay(t, svc, "u1", today.AddDate(0, 0, -d))
	}
	logCompleteDay(t, svc, "u1", today.AddDate(0, 0, -1))
	logCompleteDay(t, svc, "u1", today)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 2 {
		t.Errorf("current = %d, want 2", streak.Current)
	}
	if streak.Longest != 3 {
		t.Errorf("longest = %d, want 3", streak.Longest)
	}
	if streak.Longest < streak.Current {
		t.Error("longest must never be below current")
	}
}

func TestStreakWithNoEntries(t *testing.T) {
	svc, _ := newTestService(time.Now())

	streak, err := svc.Streak(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 0 || streak.Longest != 0 {
		t.Errorf("expected 0/0, got %d/%d", streak.Current, streak.Longest)
	}
	if streak.LastCompleteDate != nil {
		t.Errorf("expected nil last complete date, got %v", streak.LastCompleteDate)
	}
}

func TestDuplicateEntriesCountOnceTowardStreak(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(today)

	logCompleteDay(t, svc, "u1", today)
	// Extra fruit entries on the same day.
	mustRecord(t, svc, "u1", "Banana", category.Fruit, today, nil)
	mustRecord(t, svc, "u1", "Pear", category.Fruit, today, nil)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 1 {
		t.Errorf("current = %d, want 1 (one day, not one per entry)", streak.Current)
	}
}

func TestPartialDaysDoNotCount(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(today)

	// Four of five groups yesterday.
	for _, cat := range []category.Category{
		category.Fruit, category.Vegetable, category.Protein, category.Dairy,
	} {
		mustRecord(t, svc, "u1", string(cat), cat, today.AddDate(0, 0, -1), nil)
	}

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak.Current != 0 || streak.Longest != 0 {
		t.Errorf("80%% day counted toward streak: %d/%d", streak.Current, streak.Longest)
	}
}

func TestStreakWritesThroughToCache(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewInMemoryStreakStore()

	svc := NewService(food.NewInMemoryRepository(), NewInMemorySummaryStore(), cache)
	svc.now = func() time.Time { return today }
	logCompleteDay(t, svc, "u1", today)

	if _, err := svc.Streak(context.Background(), "u1"); err != nil {
		t.Fatalf("Streak: %v", err)
	}

	cached, err := cache.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("cache Get: %v", err)
	}
	if cached == nil || cached.Current != 1 {
		t.Errorf("cache not refreshed: %+v", cached)
	}
}

func TestCurrentStreakUnit(t *testing.T) {
	day := func(s string) time.Time {
		t2, _ := ParseDay(s)
		return t2
	}
	asOf := day("2024-03-10")

	cases := []struct {
		name string
		days []time.Time
		want int
	}{
		{"empty", nil, 0},
		{"only today", []time.Time{day("2024-03-10")}, 1},
		{"only yesterday", []time.Time{day("2024-03-09")}, 1},
		{"two days ago", []time.Time{day("2024-03-08")}, 0},
		{"run ending yesterday", []time.Time{day("2024-03-07"), day("2024-03-08"), day("2024-03-09")}, 3},
		{"run with gap", []time.Time{day("2024-03-05"), day("2024-03-08"), day("2024-03-09"), day("2024-03-10")}, 3},
	}

	for _, tc := range cases {
		if got := currentStreak(tc.days, asOf); got != tc.want {
			t.Errorf("%s: currentStreak = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLongestStreakUnit(t *testing.T) {
	day := func(s string) time.Time {
		t2, _ := ParseDay(s)
		return t2
	}

	cases := []struct {
		name string
		days []time.Time
		want int
	}{
		{"empty", nil, 0},
		{"single", []time.Time{day("2024-03-01")}, 1},
		{"two runs", []time.Time{
			day("2024-03-01"), day("2024-03-02"), day("2024-03-03"),
			day("2024-03-07"), day("2024-03-08"),
		}, 3},
		{"longer second run", []time.Time{
			day("2024-03-01"),
			day("2024-03-05"), day("2024-03-06"), day("2024-03-07"), day("2024-03-08"),
		}, 4},
	}

	for _, tc := range cases {
		if got := longestStreak(tc.days); got != tc.want {
			t.Errorf("%s: longestStreak = %d, want %d", tc.name, got, tc.want)
		}
	}
}
