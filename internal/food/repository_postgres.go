package food

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhu0lin/hack-knight/internal/category"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	// logged_date is derived in Go, not by casting logged_at in SQL:
	// the cast would truncate in the session time zone, while the
	// summary key uses the entry's own calendar date.
	_, err := r.db.Exec(ctx, `
		INSERT INTO food_logs
			(id, user_id, food_category, detected_food_name, image_url,
			 calories, meal_type, logged_at, logged_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date, $10)
	`,
		entry.ID, entry.UserID, string(entry.Category), entry.DetectedName,
		entry.ImageURL, entry.Calories, nullIfEmpty(entry.MealType),
		entry.LoggedAt, entry.LoggedAt.Format("2006-01-02"), entry.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListByUserAndDate(
	ctx context.Context,
	userID string,
	day time.Time,
) ([]*Entry, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, food_category, detected_food_name, image_url,
		       calories, meal_type, logged_at, created_at
		FROM food_logs
		WHERE user_id = $1 AND logged_date = $2::date
		ORDER BY logged_at DESC
	`, userID, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *PostgresRepository) ListByUser(
	ctx context.Context,
	userID string,
	limit int,
	from, to *time.Time,
) ([]*Entry, error) {

	query := `
		SELECT id, user_id, food_category, detected_food_name, image_url,
		       calories, meal_type, logged_at, created_at
		FROM food_logs
		WHERE user_id = $1
	`
	args := []any{userID}

	if from != nil {
		args = append(args, from.Format("2006-01-02"))
		query += ` AND logged_date >= $2::date`
	}
	if to != nil {
		args = append(args, to.Format("2006-01-02"))
		if from != nil {
			query += ` AND logged_date <= $3::date`
		} else {
			query += ` AND logged_date <= $2::date`
		}
	}

	query += ` ORDER BY logged_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *PostgresRepository) Delete(
	ctx context.Context,
	userID, entryID string,
) (*Entry, error) {

	var (
		e        Entry
		cat      string
		mealType *string
	)
	err := r.db.QueryRow(ctx, `
		DELETE FROM food_logs
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, food_category, detected_food_name,
		          image_url, calories, meal_type, logged_at, created_at
	`, entryID, userID).Scan(
		&e.ID, &e.UserID, &cat, &e.DetectedName, &e.ImageURL,
		&e.Calories, &mealType, &e.LoggedAt, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	e.Category = category.Category(cat)
	if mealType != nil {
		e.MealType = *mealType
	}
	return &e, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgxRows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var (
			e        Entry
			cat      string
			mealType *string
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &cat, &e.DetectedName, &e.ImageURL,
			&e.Calories, &mealType, &e.LoggedAt, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Category = category.Category(cat)
		if mealType != nil {
			e.MealType = *mealType
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
