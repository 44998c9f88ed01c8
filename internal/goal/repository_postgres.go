package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetActive(ctx context.Context, userID string) (*Goal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, goal_type, target_calories, is_active, created_at
		FROM user_goals
		WHERE user_id = $1 AND is_active
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*Goal
	for rows.Next() {
		g := &Goal{}
		var goalType string
		if err := rows.Scan(
			&g.ID, &g.UserID, &goalType, &g.TargetCalories,
			&g.IsActive, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		g.Type = Type(goalType)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(goals) {
	case 0:
		return nil, nil
	case 1:
		return goals[0], nil
	default:
		// The partial unique index should make this impossible.
		return nil, ErrMultipleActiveGoals
	}
}

// Create runs deactivate-then-insert inside one transaction so the
// single-active-goal invariant holds for every concurrent reader.
func (r *PostgresRepository) Create(ctx context.Context, g *Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	g.IsActive = true

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE user_goals
			SET is_active = false
			WHERE user_id = $1 AND is_active
		`, g.UserID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO user_goals
				(id, user_id, goal_type, target_calories, is_active, created_at)
			VALUES ($1, $2, $3, $4, true, $5)
		`, g.ID, g.UserID, string(g.Type), g.TargetCalories, g.CreatedAt)
		return err
	})
}

func (r *PostgresRepository) UpdateTargetCalories(
	ctx context.Context,
	goalID string,
	calories int,
) error {

	tag, err := r.db.Exec(ctx, `
		UPDATE user_goals
		SET target_calories = $1
		WHERE id = $2
	`, calories, goalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("goal not found")
	}
	return nil
}
