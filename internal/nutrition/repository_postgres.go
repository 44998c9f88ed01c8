package nutrition

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSummaryStore struct {
	db *pgxpool.Pool
}

func NewPostgresSummaryStore(db *pgxpool.Pool) *PostgresSummaryStore {
	return &PostgresSummaryStore{db: db}
}

func (r *PostgresSummaryStore) Get(
	ctx context.Context,
	userID string,
	day time.Time,
) (*Summary, error) {

	s := &Summary{}
	var date time.Time

	err := r.db.QueryRow(ctx, `
		SELECT user_id, date, fruits_count, vegetables_count,
		       protein_count, dairy_count, grains_count,
		       total_calories, completion_percentage
		FROM daily_nutrition_summary
		WHERE user_id = $1 AND date = $2::date
	`, userID, FormatDay(day)).Scan(
		&s.UserID, &date, &s.FruitsCount, &s.VegetablesCount,
		&s.ProteinCount, &s.DairyCount, &s.GrainsCount,
		&s.TotalCalories, &s.CompletionPercentage,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.Date = Day(date)
	return s, nil
}

// Upsert replaces the whole row. ON CONFLICT keeps the write atomic
// under concurrent recomputes: last writer wins on a full row, never
// a partial one.
func (r *PostgresSummaryStore) Upsert(ctx context.Context, s *Summary) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO daily_nutrition_summary
			(user_id, date, fruits_count, vegetables_count, protein_count,
			 dairy_count, grains_count, total_calories, completion_percentage)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, date) DO UPDATE SET
			fruits_count          = EXCLUDED.fruits_count,
			vegetables_count      = EXCLUDED.vegetables_count,
			protein_count         = EXCLUDED.protein_count,
			dairy_count           = EXCLUDED.dairy_count,
			grains_count          = EXCLUDED.grains_count,
			total_calories        = EXCLUDED.total_calories,
			completion_percentage = EXCLUDED.completion_percentage,
			updated_at            = now()
	`,
		s.UserID, FormatDay(s.Date), s.FruitsCount, s.VegetablesCount,
		s.ProteinCount, s.DairyCount, s.GrainsCount,
		s.TotalCalories, s.CompletionPercentage,
	)
	return err
}

func (r *PostgresSummaryStore) ListByUser(
	ctx context.Context,
	userID string,
) ([]*Summary, error) {

	rows, err := r.db.Query(ctx, `
		SELECT user_id, date, fruits_count, vegetables_count,
		       protein_count, dairy_count, grains_count,
		       total_calories, completion_percentage
		FROM daily_nutrition_summary
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Summary
	for rows.Next() {
		s := &Summary{}
		var date time.Time
		if err := rows.Scan(
			&s.UserID, &date, &s.FruitsCount, &s.VegetablesCount,
			&s.ProteinCount, &s.DairyCount, &s.GrainsCount,
			&s.TotalCalories, &s.CompletionPercentage,
		); err != nil {
			return nil, err
		}
		s.Date = Day(date)
		out = append(out, s)
	}
	return out, rows.Err()
}

type PostgresStreakStore struct {
	db *pgxpool.Pool
}

func NewPostgresStreakStore(db *pgxpool.Pool) *PostgresStreakStore {
	return &PostgresStreakStore{db: db}
}

func (r *PostgresStreakStore) Get(ctx context.Context, userID string) (*Streak, error) {
	s := &Streak{}
	var last *time.Time

	err := r.db.QueryRow(ctx, `
		SELECT user_id, current_streak, longest_streak, last_complete_date
		FROM user_streaks
		WHERE user_id = $1
	`, userID).Scan(&s.UserID, &s.Current, &s.Longest, &last)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if last != nil {
		d := Day(*last)
		s.LastCompleteDate = &d
	}
	return s, nil
}

func (r *PostgresStreakStore) Upsert(ctx context.Context, s *Streak) error {
	var last *string
	if s.LastCompleteDate != nil {
		d := FormatDay(*s.LastCompleteDate)
		last = &d
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO user_streaks
			(user_id, current_streak, longest_streak, last_complete_date)
		VALUES ($1, $2, $3, $4::date)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak     = EXCLUDED.current_streak,
			longest_streak     = EXCLUDED.longest_streak,
			last_complete_date = EXCLUDED.last_complete_date,
			updated_at         = now()
	`, s.UserID, s.Current, s.Longest, last)
	return err
}
