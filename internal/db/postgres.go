package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// schemaStatements run in order on startup. logged_date is written by
// the food repository from the entry's own calendar date; it is never
// derived by casting logged_at, which would truncate in the session
// time zone instead.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		current_weight DOUBLE PRECISION,
		target_weight DOUBLE PRECISION,
		height DOUBLE PRECISION,
		age INTEGER,
		activity_level VARCHAR(50),
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,

	`
	CREATE TABLE IF NOT EXISTS food_logs (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		food_category VARCHAR(50) NOT NULL,
		detected_food_name VARCHAR(255) NOT NULL,
		image_url VARCHAR(500),
		calories INTEGER,
		meal_type VARCHAR(50),
		logged_at TIMESTAMPTZ NOT NULL,
		logged_date DATE NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,

	`
	CREATE INDEX IF NOT EXISTS idx_food_logs_user_logged_date
	ON food_logs (user_id, logged_date)`,

	`
	CREATE TABLE IF NOT EXISTS daily_nutrition_summary (
		id SERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		date DATE NOT NULL,
		fruits_count INTEGER NOT NULL DEFAULT 0,
		vegetables_count INTEGER NOT NULL DEFAULT 0,
		protein_count INTEGER NOT NULL DEFAULT 0,
		dairy_count INTEGER NOT NULL DEFAULT 0,
		grains_count INTEGER NOT NULL DEFAULT 0,
		total_calories INTEGER NOT NULL DEFAULT 0,
		completion_percentage INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		UNIQUE (user_id, date)
	)`,

	`
	CREATE TABLE IF NOT EXISTS user_streaks (
		id SERIAL PRIMARY KEY,
		user_id UUID UNIQUE NOT NULL,
		current_streak INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		last_complete_date DATE,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,

	`
	CREATE TABLE IF NOT EXISTS user_goals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		goal_type VARCHAR(50) NOT NULL,
		target_calories INTEGER,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,

	// At most one active goal per user, enforced at the database level
	// in addition to the deactivate-then-insert transaction.
	`
	CREATE UNIQUE INDEX IF NOT EXISTS idx_user_goals_one_active
	ON user_goals (user_id) WHERE is_active`,
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
