package goal

import "context"

// Repository is the goal store. Create must deactivate any prior
// active goal and insert the new one as a single atomic transition: a
// concurrent reader must never observe zero or two active goals.
type Repository interface {
	// GetActive returns nil when the user has no active goal.
	GetActive(ctx context.Context, userID string) (*Goal, error)
	Create(ctx context.Context, g *Goal) error
	UpdateTargetCalories(ctx context.Context, goalID string, calories int) error
}
