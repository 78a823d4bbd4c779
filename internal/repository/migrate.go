package repository

import (
	"context"
	"fmt"
)

// Schema evolution is additive-only: new tables use CREATE TABLE IF NOT
// EXISTS and new columns use ADD COLUMN IF NOT EXISTS, so the statements
// are safe to re-run on every startup.
var migrateStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		user_id UUID,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		transport TEXT,
		start_date DATE NOT NULL,
		end_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE trips ADD COLUMN IF NOT EXISTS accommodation TEXT`,
	`ALTER TABLE trips ADD COLUMN IF NOT EXISTS budget NUMERIC(10,2)`,
	`ALTER TABLE trips ADD COLUMN IF NOT EXISTS travelers INTEGER NOT NULL DEFAULT 1`,
	`ALTER TABLE trips ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'Planning'`,
	`ALTER TABLE trips ADD COLUMN IF NOT EXISTS activities TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_trips_user_start ON trips (user_id, start_date)`,
	`CREATE TABLE IF NOT EXISTS cities (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		country TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the idempotent schema bootstrap and seeds the cities
// reference table when it is empty.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range migrateStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if err := r.SeedCities(ctx); err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}

	return nil
}
