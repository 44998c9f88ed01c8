package nutrition

import (
	"context"
	"log"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
	"github.com/zhu0lin/hack-knight/internal/food"
)

// Service is the nutrition completion and streak engine. It owns no
// I/O of its own: all persistence goes through the injected stores,
// and food_logs remain the single source of truth from which the
// summary and streak caches are recomputed in full.
type Service struct {
	logs      food.Repository
	summaries SummaryStore
	streaks   StreakStore // optional cache, may be nil

	now func() time.Time
}

func NewService(logs food.Repository, summaries SummaryStore, streaks StreakStore) *Service {
	return &Service{
		logs:      logs,
		summaries: summaries,
		streaks:   streaks,
		now:       time.Now,
	}
}

// Record validates and persists a food log entry, then recomputes and
// returns the summary for the entry's day.
func (s *Service) Record(ctx context.Context, entry *food.Entry) (*Summary, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.now().UTC()
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	// Store the canonical form so downstream consumers never see raw
	// aliases.
	if cat, ok := category.Normalize(string(entry.Category)); ok {
		entry.Category = cat
	}

	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, err
	}

	return s.Recompute(ctx, entry.UserID, entry.LoggedAt)
}

// DeleteLog removes an entry and recomputes the affected day. Returns
// false when no entry matched (not an error: deletes are idempotent).
func (s *Service) DeleteLog(ctx context.Context, userID, entryID string) (bool, error) {
	deleted, err := s.logs.Delete(ctx, userID, entryID)
	if err != nil {
		return false, err
	}
	if deleted == nil {
		return false, nil
	}

	if _, err := s.Recompute(ctx, userID, deleted.LoggedAt); err != nil {
		return true, err
	}
	return true, nil
}

// Logs lists a user's entries newest first.
func (s *Service) Logs(
	ctx context.Context,
	userID string,
	limit int,
	from, to *time.Time,
) ([]*food.Entry, error) {
	return s.logs.ListByUser(ctx, userID, limit, from, to)
}

// Recompute derives the day's summary from scratch out of the current
// log set and upserts it. The result depends only on the log set, so
// concurrent or out-of-order recomputes all converge on the same row.
func (s *Service) Recompute(ctx context.Context, userID string, day time.Time) (*Summary, error) {
	entries, err := s.logs.ListByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	summary := aggregate(userID, Day(day), entries)
	if err := summary.Validate(); err != nil {
		return nil, err
	}

	if err := s.summaries.Upsert(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// aggregate folds a day's entries into a summary. Unrecognized
// categories are skipped rather than counted as "other"; entries
// without calories contribute 0.
func aggregate(userID string, day time.Time, entries []*food.Entry) *Summary {
	summary := &Summary{UserID: userID, Date: day}

	for _, e := range entries {
		cat, ok := category.Normalize(string(e.Category))
		if !ok {
			continue
		}
		summary.addCount(cat)
		if e.Calories != nil {
			summary.TotalCalories += *e.Calories
		}
	}

	for _, cat := range category.All() {
		if summary.Count(cat) > 0 {
			summary.CompletionPercentage += 20
		}
	}
	return summary
}

// Summary returns the stored summary for a day, or a synthesized
// zero-summary when none exists. "No data yet" is a steady state, not
// an error, and the zero row is not persisted speculatively.
func (s *Service) Summary(ctx context.Context, userID string, day time.Time) (*Summary, error) {
	stored, err := s.summaries.Get(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &Summary{UserID: userID, Date: Day(day)}, nil
	}
	if err := stored.Validate(); err != nil {
		return nil, err
	}
	return stored, nil
}

// MissingGroups returns the canonical categories not yet logged that
// day, in display order.
func (s *Service) MissingGroups(ctx context.Context, userID string, day time.Time) ([]category.Category, error) {
	summary, err := s.Summary(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	missing := []category.Category{}
	for _, cat := range category.All() {
		if summary.Count(cat) == 0 {
			missing = append(missing, cat)
		}
	}
	return missing, nil
}

// CompletedGroups is the complement of MissingGroups.
func (s *Service) CompletedGroups(ctx context.Context, userID string, day time.Time) ([]category.Category, error) {
	summary, err := s.Summary(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	completed := []category.Category{}
	for _, cat := range category.All() {
		if summary.Count(cat) > 0 {
			completed = append(completed, cat)
		}
	}
	return completed, nil
}

// Streak derives current and longest streaks from the raw log set.
// Summaries may be stale under concurrent writes, so completeness is
// judged by the distinct categories actually logged each day, and the
// streak row is only a write-through cache.
func (s *Service) Streak(ctx context.Context, userID string) (*Streak, error) {
	entries, err := s.logs.ListByUser(ctx, userID, 0, nil, nil)
	if err != nil {
		return nil, err
	}

	complete := completeDays(entries)
	today := Day(s.now().UTC())

	streak := &Streak{
		UserID:  userID,
		Current: currentStreak(complete, today),
		Longest: longestStreak(complete),
	}
	if last, ok := latestDay(complete); ok {
		streak.LastCompleteDate = &last
	}

	// Longest covers every historical run including the live one.
	if streak.Longest < streak.Current {
		streak.Longest = streak.Current
	}

	if s.streaks != nil {
		if err := s.streaks.Upsert(ctx, streak); err != nil {
			// Cache refresh failure must not fail the read.
			log.Printf("streak cache upsert failed for user %s: %v", userID, err)
		}
	}
	return streak, nil
}

// History returns all stored summaries for a user, newest first.
// Days with no logs have no row and simply don't appear.
func (s *Service) History(ctx context.Context, userID string) ([]*Summary, error) {
	return s.summaries.ListByUser(ctx, userID)
}

// WeekSummary assembles seven daily summaries starting at weekStart.
func (s *Service) WeekSummary(ctx context.Context, userID string, weekStart time.Time) (*WeekSummary, error) {
	start := Day(weekStart)
	end := start.AddDate(0, 0, 6)

	week := &WeekSummary{WeekStart: start, WeekEnd: end}

	var completionSum int
	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		summary, err := s.Summary(ctx, userID, day)
		if err != nil {
			return nil, err
		}
		week.Days = append(week.Days, summary)
		completionSum += summary.CompletionPercentage
	}
	week.AverageCompletion = float64(completionSum) / 7

	entries, err := s.logs.ListByUser(ctx, userID, 0, &start, &end)
	if err != nil {
		return nil, err
	}
	week.TotalLogs = len(entries)

	return week, nil
}
