package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/roamly/roamly/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 730730

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// TruncateAll empties every application table between tests. Cities are
// truncated too so seeding behavior stays testable.
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE trips, users, cities"); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// TruncateUserData empties trips and users but leaves seeded cities in place.
func TruncateUserData(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE trips, users"); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	name := "Test Traveler"
	return &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$testhashnotverifiablexxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Name:         &name,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewTestTrip creates a test trip owned by the given user.
func NewTestTrip(t testing.TB, userID string) *model.Trip {
	t.Helper()
	now := time.Now().UTC()
	owner := userID
	return &model.Trip{
		ID:          ulid.Make().String(),
		UserID:      &owner,
		Origin:      "Warsaw",
		Destination: "Lisbon",
		StartDate:   now.AddDate(0, 1, 0).Truncate(24 * time.Hour),
		Transport:   model.TransportPlane,
		Travelers:   1,
		Status:      model.StatusPlanning,
		CreatedAt:   now,
	}
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
