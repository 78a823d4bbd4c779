//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/roamly/internal/model"
	"github.com/roamly/roamly/internal/testutil"
)

// ============================================================================
// Trip Repository Integration Tests
// ============================================================================

func TestIntegrationTripRepository_CreateTrip(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	ownerID := uuid.New().String()
	trip := testutil.NewTestTrip(t, ownerID)

	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	trips, err := repo.ListTripsByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("Expected 1 trip, got %d", len(trips))
	}

	got := trips[0]
	if got.ID != trip.ID {
		t.Errorf("ID mismatch: got %q, want %q", got.ID, trip.ID)
	}
	if got.Origin != trip.Origin || got.Destination != trip.Destination {
		t.Errorf("Route mismatch: got %s->%s, want %s->%s",
			got.Origin, got.Destination, trip.Origin, trip.Destination)
	}
	if got.Transport != model.TransportPlane {
		t.Errorf("Transport mismatch: got %q, want %q", got.Transport, model.TransportPlane)
	}
	if got.Travelers != 1 {
		t.Errorf("Travelers mismatch: got %d, want 1", got.Travelers)
	}
	if got.Status != model.StatusPlanning {
		t.Errorf("Status mismatch: got %q, want %q", got.Status, model.StatusPlanning)
	}
	if got.StartDate.Format(time.DateOnly) != trip.StartDate.Format(time.DateOnly) {
		t.Errorf("StartDate mismatch: got %s, want %s",
			got.StartDate.Format(time.DateOnly), trip.StartDate.Format(time.DateOnly))
	}
}

func TestIntegrationTripRepository_CreateTrip_OptionalFields(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	ownerID := uuid.New().String()
	trip := testutil.NewTestTrip(t, ownerID)
	endDate := trip.StartDate.AddDate(0, 0, 7)
	accommodation := "Hotel Avenida"
	budget := 1450.50
	activities := "surfing, tram 28, pasteis"
	trip.EndDate = &endDate
	trip.Accommodation = &accommodation
	trip.Budget = &budget
	trip.Activities = &activities

	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	trips, err := repo.ListTripsByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("Expected 1 trip, got %d", len(trips))
	}

	got := trips[0]
	if got.EndDate == nil || got.EndDate.Format(time.DateOnly) != endDate.Format(time.DateOnly) {
		t.Errorf("EndDate mismatch: got %v, want %s", got.EndDate, endDate.Format(time.DateOnly))
	}
	if got.Accommodation == nil || *got.Accommodation != accommodation {
		t.Errorf("Accommodation mismatch: got %v, want %q", got.Accommodation, accommodation)
	}
	if got.Budget == nil || *got.Budget != budget {
		t.Errorf("Budget mismatch: got %v, want %v", got.Budget, budget)
	}
	if got.Activities == nil || *got.Activities != activities {
		t.Errorf("Activities mismatch: got %v, want %q", got.Activities, activities)
	}
}

func TestIntegrationTripRepository_ListTripsByOwner_Ordering(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	ownerID := uuid.New().String()
	base := time.Now().UTC().Truncate(24 * time.Hour)

	// Insert out of order; the listing must come back by start date.
	for _, offset := range []int{30, 10, 20} {
		trip := testutil.NewTestTrip(t, ownerID)
		trip.StartDate = base.AddDate(0, 0, offset)
		trip.Destination = fmt.Sprintf("City+%d", offset)
		if err := repo.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
	}

	trips, err := repo.ListTripsByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("Expected 3 trips, got %d", len(trips))
	}

	for i := 1; i < len(trips); i++ {
		if trips[i].StartDate.Before(trips[i-1].StartDate) {
			t.Errorf("Trips out of order at index %d: %s before %s",
				i, trips[i].StartDate, trips[i-1].StartDate)
		}
	}
}

func TestIntegrationTripRepository_ListTripsByOwner_ScopedToOwner(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	aliceID := uuid.New().String()
	bobID := uuid.New().String()

	if err := repo.CreateTrip(ctx, testutil.NewTestTrip(t, aliceID)); err != nil {
		t.Fatalf("CreateTrip (alice) failed: %v", err)
	}
	if err := repo.CreateTrip(ctx, testutil.NewTestTrip(t, bobID)); err != nil {
		t.Fatalf("CreateTrip (bob) failed: %v", err)
	}

	trips, err := repo.ListTripsByOwner(ctx, aliceID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("Expected 1 trip for alice, got %d", len(trips))
	}
	if !trips[0].OwnedBy(aliceID) {
		t.Errorf("Listed trip not owned by alice: user_id=%v", trips[0].UserID)
	}
}

func TestIntegrationTripRepository_ListSampleTrips_Limit(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	for i := 0; i < 25; i++ {
		trip := testutil.NewTestTrip(t, uuid.New().String())
		trip.StartDate = trip.StartDate.AddDate(0, 0, i)
		if err := repo.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
	}

	trips, err := repo.ListSampleTrips(ctx, 20)
	if err != nil {
		t.Fatalf("ListSampleTrips failed: %v", err)
	}
	if len(trips) != 20 {
		t.Errorf("Expected 20 trips, got %d", len(trips))
	}
}

func TestIntegrationTripRepository_UpdateTrip(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	ownerID := uuid.New().String()
	trip := testutil.NewTestTrip(t, ownerID)
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	trip.Destination = "Porto"
	trip.Status = model.StatusBooked
	trip.Travelers = 4
	updated, err := repo.UpdateTrip(ctx, ownerID, trip)
	if err != nil {
		t.Fatalf("UpdateTrip failed: %v", err)
	}

	if updated.Destination != "Porto" {
		t.Errorf("Destination mismatch: got %q, want %q", updated.Destination, "Porto")
	}
	if updated.Status != model.StatusBooked {
		t.Errorf("Status mismatch: got %q, want %q", updated.Status, model.StatusBooked)
	}
	if updated.Travelers != 4 {
		t.Errorf("Travelers mismatch: got %d, want 4", updated.Travelers)
	}
}

func TestIntegrationTripRepository_UpdateTrip_WrongOwner(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	aliceID := uuid.New().String()
	bobID := uuid.New().String()

	trip := testutil.NewTestTrip(t, aliceID)
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	attempt := *trip
	attempt.Destination = "Hijacked"
	if _, err := repo.UpdateTrip(ctx, bobID, &attempt); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("Expected ErrTripNotFound for cross-owner update, got: %v", err)
	}

	// The record must be untouched.
	trips, err := repo.ListTripsByOwner(ctx, aliceID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 1 || trips[0].Destination != trip.Destination {
		t.Errorf("Trip changed by cross-owner update: %+v", trips)
	}
}

func TestIntegrationTripRepository_UpdateTrip_Missing(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	trip := testutil.NewTestTrip(t, uuid.New().String())
	if _, err := repo.UpdateTrip(ctx, *trip.UserID, trip); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("Expected ErrTripNotFound for missing trip, got: %v", err)
	}
}

func TestIntegrationTripRepository_DeleteTrip(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	ownerID := uuid.New().String()
	trip := testutil.NewTestTrip(t, ownerID)
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	if err := repo.DeleteTrip(ctx, ownerID, trip.ID); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	// Deleting again reports not found.
	if err := repo.DeleteTrip(ctx, ownerID, trip.ID); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("Expected ErrTripNotFound on second delete, got: %v", err)
	}
}

func TestIntegrationTripRepository_DeleteTrip_WrongOwner(t *testing.T) {
	ctx, repo := newTripTestEnv(t)

	aliceID := uuid.New().String()
	bobID := uuid.New().String()

	trip := testutil.NewTestTrip(t, aliceID)
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	if err := repo.DeleteTrip(ctx, bobID, trip.ID); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("Expected ErrTripNotFound for cross-owner delete, got: %v", err)
	}

	trips, err := repo.ListTripsByOwner(ctx, aliceID)
	if err != nil {
		t.Fatalf("ListTripsByOwner failed: %v", err)
	}
	if len(trips) != 1 {
		t.Errorf("Trip deleted by cross-owner delete; %d trips left", len(trips))
	}
}

// ============================================================================
// Test Environment Setup
// ============================================================================

func newTripTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := testutil.TruncateUserData(ctx, repo.Pool()); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return ctx, repo
}
