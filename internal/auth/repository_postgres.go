package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.FullName, user.Email, user.Password, user.CreatedAt)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM users WHERE email = $1 LIMIT 1`, email,
	).Scan(&exists)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const userColumns = `
	id, full_name, email, password,
	current_weight, target_weight, height, age, activity_level,
	created_at
`

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query, arg string) (*User, error) {
	user := &User{}
	var activityLevel *string

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password,
		&user.CurrentWeightKg, &user.TargetWeightKg, &user.HeightCm,
		&user.Age, &activityLevel, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if activityLevel != nil {
		user.ActivityLevel = *activityLevel
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdateProfile(
	ctx context.Context,
	id string,
	profile *Profile,
) (*User, error) {

	user := &User{}
	var activityLevel *string

	err := r.db.QueryRow(ctx, `
		UPDATE users SET
			full_name      = COALESCE($1, full_name),
			current_weight = COALESCE($2, current_weight),
			target_weight  = COALESCE($3, target_weight),
			height         = COALESCE($4, height),
			age            = COALESCE($5, age),
			activity_level = COALESCE($6, activity_level)
		WHERE id = $7
		RETURNING `+userColumns+`
	`,
		profile.FullName, profile.CurrentWeightKg, profile.TargetWeightKg,
		profile.HeightCm, profile.Age, profile.ActivityLevel, id,
	).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password,
		&user.CurrentWeightKg, &user.TargetWeightKg, &user.HeightCm,
		&user.Age, &activityLevel, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if activityLevel != nil {
		user.ActivityLevel = *activityLevel
	}
	return user, nil
}
