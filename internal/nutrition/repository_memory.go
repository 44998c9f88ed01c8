package nutrition

import (
	"context"
	"sort"
	"sync"
	"time"
)

type InMemorySummaryStore struct {
	mu        sync.Mutex
	summaries map[string]map[string]*Summary // userID -> day -> summary
}

func NewInMemorySummaryStore() *InMemorySummaryStore {
	return &InMemorySummaryStore{summaries: make(map[string]map[string]*Summary)}
}

func (r *InMemorySummaryStore) Get(
	ctx context.Context,
	userID string,
	day time.Time,
) (*Summary, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.summaries[userID][FormatDay(day)]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *InMemorySummaryStore) Upsert(ctx context.Context, s *Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.summaries[s.UserID] == nil {
		r.summaries[s.UserID] = make(map[string]*Summary)
	}
	copied := *s
	r.summaries[s.UserID][FormatDay(s.Date)] = &copied
	return nil
}

func (r *InMemorySummaryStore) ListByUser(
	ctx context.Context,
	userID string,
) ([]*Summary, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Summary
	for _, s := range r.summaries[userID] {
		copied := *s
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

type InMemoryStreakStore struct {
	mu      sync.Mutex
	streaks map[string]*Streak
}

func NewInMemoryStreakStore() *InMemoryStreakStore {
	return &InMemoryStreakStore{streaks: make(map[string]*Streak)}
}

func (r *InMemoryStreakStore) Get(ctx context.Context, userID string) (*Streak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.streaks[userID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *InMemoryStreakStore) Upsert(ctx context.Context, s *Streak) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *s
	r.streaks[s.UserID] = &copied
	return nil
}
