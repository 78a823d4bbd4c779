package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/roamly/roamly/internal/model"
)

// ErrTripNotFound is returned when a trip does not exist or does not
// belong to the caller. The two cases are deliberately indistinguishable
// so callers cannot probe for other users' trip IDs.
var ErrTripNotFound = errors.New("trip not found")

const tripColumns = `id, user_id, origin, destination, transport, start_date, end_date,
	accommodation, budget, travelers, status, activities, created_at`

// CreateTrip inserts a new trip owned by trip.UserID.
func (r *Repository) CreateTrip(ctx context.Context, trip *model.Trip) error {
	query := `
		INSERT INTO trips (id, user_id, origin, destination, transport, start_date, end_date,
			accommodation, budget, travelers, status, activities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		trip.ID,
		trip.UserID,
		trip.Origin,
		trip.Destination,
		nullableMode(trip.Transport),
		trip.StartDate,
		trip.EndDate,
		trip.Accommodation,
		trip.Budget,
		trip.Travelers,
		trip.Status,
		trip.Activities,
		trip.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// ListTripsByOwner retrieves all trips owned by the given user,
// ordered by start date ascending.
func (r *Repository) ListTripsByOwner(ctx context.Context, ownerID string) ([]*model.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY start_date, id
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// ListSampleTrips retrieves up to limit trips across all owners, ordered
// by start date ascending. This backs the guest-mode listing.
func (r *Repository) ListSampleTrips(ctx context.Context, limit int) ([]*model.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY start_date, id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sample trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// UpdateTrip overwrites the mutable fields of a trip in a single
// ownership-scoped statement. The WHERE clause matches both id and
// user_id so there is no window between an ownership check and the
// mutation. Zero matched rows means ErrTripNotFound.
func (r *Repository) UpdateTrip(ctx context.Context, ownerID string, trip *model.Trip) (*model.Trip, error) {
	query := `
		UPDATE trips
		SET origin = $3, destination = $4, transport = $5, start_date = $6, end_date = $7,
			accommodation = $8, budget = $9, travelers = $10, status = $11, activities = $12
		WHERE id = $1 AND user_id = $2
		RETURNING ` + tripColumns

	updated, err := scanTrip(r.pool.QueryRow(ctx, query,
		trip.ID,
		ownerID,
		trip.Origin,
		trip.Destination,
		nullableMode(trip.Transport),
		trip.StartDate,
		trip.EndDate,
		trip.Accommodation,
		trip.Budget,
		trip.Travelers,
		trip.Status,
		trip.Activities,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return updated, nil
}

// DeleteTrip removes a trip in a single ownership-scoped statement.
// Zero matched rows means ErrTripNotFound.
func (r *Repository) DeleteTrip(ctx context.Context, ownerID, tripID string) error {
	query := `DELETE FROM trips WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, tripID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}

// scanTrip scans a single row into a Trip model.
func scanTrip(row pgx.Row) (*model.Trip, error) {
	var trip model.Trip
	var transport *string

	err := row.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Origin,
		&trip.Destination,
		&transport,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Accommodation,
		&trip.Budget,
		&trip.Travelers,
		&trip.Status,
		&trip.Activities,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if transport != nil {
		trip.Transport = model.TransportMode(*transport)
	}

	return &trip, nil
}

// collectTrips drains rows into Trip models.
func collectTrips(rows pgx.Rows) ([]*model.Trip, error) {
	var trips []*model.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}

// nullableMode stores an unset transport mode as NULL rather than "".
func nullableMode(mode model.TransportMode) *string {
	if mode == "" {
		return nil
	}
	s := string(mode)
	return &s
}
