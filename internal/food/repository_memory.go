package food

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{entries: make(map[string]*Entry)}
}

func (r *InMemoryRepository) Append(ctx context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListByUserAndDate(
	ctx context.Context,
	userID string,
	day time.Time,
) ([]*Entry, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	want := day.Format("2006-01-02")

	var out []*Entry
	for _, e := range r.entries {
		if e.UserID == userID && e.LoggedAt.Format("2006-01-02") == want {
			copied := *e
			out = append(out, &copied)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LoggedAt.After(out[j].LoggedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ListByUser(
	ctx context.Context,
	userID string,
	limit int,
	from, to *time.Time,
) ([]*Entry, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Entry
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		day := e.LoggedAt.Format("2006-01-02")
		if from != nil && day < from.Format("2006-01-02") {
			continue
		}
		if to != nil && day > to.Format("2006-01-02") {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LoggedAt.After(out[j].LoggedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Delete(
	ctx context.Context,
	userID, entryID string,
) (*Entry, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	delete(r.entries, entryID)
	copied := *e
	return &copied, nil
}
