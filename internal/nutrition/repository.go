package nutrition

import (
	"context"
	"time"
)

// SummaryStore holds the per-day summary cache. Upsert must replace
// the whole row atomically; partial-field writes would break the
// recompute-from-source guarantee.
type SummaryStore interface {
	// Get returns nil when no summary is stored for that day.
	Get(ctx context.Context, userID string, day time.Time) (*Summary, error)
	Upsert(ctx context.Context, summary *Summary) error
	// ListByUser returns summaries ordered by date descending.
	ListByUser(ctx context.Context, userID string) ([]*Summary, error)
}

// StreakStore is a pure read-optimization. The engine stays correct
// if it is absent and every streak read recomputes from the logs.
type StreakStore interface {
	Get(ctx context.Context, userID string) (*Streak, error)
	Upsert(ctx context.Context, streak *Streak) error
}
