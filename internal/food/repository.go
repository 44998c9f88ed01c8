package food

import (
	"context"
	"time"
)

// Repository is the food log store. Entries are the source of truth
// for all derived nutrition data; summaries and streaks are caches
// recomputed from them.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error

	// ListByUserAndDate returns the entries whose logged-at falls on
	// the given calendar day.
	ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]*Entry, error)

	// ListByUser returns entries newest first. limit <= 0 means no
	// limit; from/to are optional day bounds (inclusive).
	ListByUser(ctx context.Context, userID string, limit int, from, to *time.Time) ([]*Entry, error)

	// Delete removes an entry owned by userID, returning the deleted
	// entry or nil when none matched.
	Delete(ctx context.Context, userID, entryID string) (*Entry, error)
}
