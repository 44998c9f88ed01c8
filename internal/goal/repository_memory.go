package goal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	goals map[string][]*Goal // userID -> all goals, newest last
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{goals: make(map[string][]*Goal)}
}

func (r *InMemoryRepository) GetActive(ctx context.Context, userID string) (*Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active *Goal
	for _, g := range r.goals[userID] {
		if !g.IsActive {
			continue
		}
		if active != nil {
			return nil, ErrMultipleActiveGoals
		}
		copied := *g
		active = &copied
	}
	return active, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, g *Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	g.IsActive = true

	// Deactivate-then-insert under one lock: readers never see zero
	// or two active rows.
	for _, prev := range r.goals[g.UserID] {
		prev.IsActive = false
	}

	copied := *g
	r.goals[g.UserID] = append(r.goals[g.UserID], &copied)
	return nil
}

func (r *InMemoryRepository) UpdateTargetCalories(
	ctx context.Context,
	goalID string,
	calories int,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, goals := range r.goals {
		for _, g := range goals {
			if g.ID == goalID {
				c := calories
				g.TargetCalories = &c
				return nil
			}
		}
	}
	return errors.New("goal not found")
}
