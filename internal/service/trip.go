package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/roamly/roamly/internal/metrics"
	"github.com/roamly/roamly/internal/model"
	"github.com/roamly/roamly/internal/repository"
)

// GuestListingPolicy controls what anonymous callers see when listing trips.
type GuestListingPolicy struct {
	// Enabled exposes a bounded sample of trips across all owners to
	// anonymous callers. Disabled returns an empty list.
	Enabled bool
	// Limit caps the sample size.
	Limit int
}

// TripService handles trip business logic. Every mutating operation is
// scoped to the caller's identity one layer down in the repository.
type TripService struct {
	repo    *repository.Repository
	guest   GuestListingPolicy
	metrics metrics.Recorder
}

// NewTripService creates a new TripService.
func NewTripService(repo *repository.Repository, guest GuestListingPolicy, recorder metrics.Recorder) *TripService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if guest.Limit <= 0 {
		guest.Limit = 20
	}
	return &TripService{
		repo:    repo,
		guest:   guest,
		metrics: recorder,
	}
}

// TripInput carries the writable fields of a trip. Dates arrive as
// strings in YYYY-MM-DD form.
type TripInput struct {
	Origin        string
	Destination   string
	Transport     string
	StartDate     string
	EndDate       string
	Accommodation *string
	Budget        *float64
	Travelers     int
	Status        string
	Activities    *string
}

// ListTrips returns the caller's trips ordered by start date, or the
// guest sample when no identity is present.
func (s *TripService) ListTrips(ctx context.Context, identity *model.Identity) ([]*model.Trip, error) {
	var trips []*model.Trip
	var err error

	if identity != nil {
		trips, err = s.repo.ListTripsByOwner(ctx, identity.UserID)
	} else {
		s.metrics.IncGuestListing()
		if !s.guest.Enabled {
			return []*model.Trip{}, nil
		}
		trips, err = s.repo.ListSampleTrips(ctx, s.guest.Limit)
	}

	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	if trips == nil {
		trips = []*model.Trip{}
	}
	return trips, nil
}

// CreateTrip validates the input and persists a new trip owned by the caller.
func (s *TripService) CreateTrip(ctx context.Context, identity model.Identity, input TripInput) (*model.Trip, error) {
	trip, err := buildTrip(input)
	if err != nil {
		return nil, err
	}

	trip.ID = newTripID()
	trip.UserID = &identity.UserID
	trip.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.metrics.IncTripCreated()

	return trip, nil
}

// UpdateTrip validates the input and overwrites the trip's fields,
// but only where the record is owned by the caller. A trip that is
// absent or owned by someone else yields the same ErrTripNotFound.
func (s *TripService) UpdateTrip(ctx context.Context, identity model.Identity, tripID string, input TripInput) (*model.Trip, error) {
	trip, err := buildTrip(input)
	if err != nil {
		return nil, err
	}

	trip.ID = tripID

	updated, err := s.repo.UpdateTrip(ctx, identity.UserID, trip)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("update trip: %w", err)
	}

	s.metrics.IncTripUpdated()

	return updated, nil
}

// DeleteTrip removes the trip where owned by the caller, with the same
// not-found conflation as UpdateTrip.
func (s *TripService) DeleteTrip(ctx context.Context, identity model.Identity, tripID string) error {
	if err := s.repo.DeleteTrip(ctx, identity.UserID, tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("delete trip: %w", err)
	}

	s.metrics.IncTripDeleted()

	return nil
}

// buildTrip validates TripInput and converts it into a Trip model with
// defaults applied. The returned trip has no ID, owner, or timestamp.
func buildTrip(input TripInput) (*model.Trip, error) {
	if input.Origin == "" {
		return nil, newValidationError("origin", "origin is required")
	}
	if input.Destination == "" {
		return nil, newValidationError("destination", "destination is required")
	}
	if input.StartDate == "" {
		return nil, newValidationError("start_date", "start date is required")
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, newValidationError("start_date", "start date must be YYYY-MM-DD")
	}

	var endDate *time.Time
	if input.EndDate != "" {
		parsed, err := parseDate(input.EndDate)
		if err != nil {
			return nil, newValidationError("end_date", "end date must be YYYY-MM-DD")
		}
		// An end date before the start date is stored as-is, not
		// rejected; clients round-trip whatever they saved.
		endDate = &parsed
	}

	transport := model.TransportMode(input.Transport)
	if !transport.IsValid() {
		return nil, newValidationError("transport", "transport must be Plane, Train, Bus or Car")
	}

	travelers := input.Travelers
	if travelers <= 0 {
		travelers = 1
	}

	status := input.Status
	if status == "" {
		status = model.StatusPlanning
	}

	return &model.Trip{
		Origin:        input.Origin,
		Destination:   input.Destination,
		Transport:     transport,
		StartDate:     startDate,
		EndDate:       endDate,
		Accommodation: input.Accommodation,
		Budget:        input.Budget,
		Travelers:     travelers,
		Status:        status,
		Activities:    input.Activities,
	}, nil
}

// parseDate accepts YYYY-MM-DD, falling back to RFC 3339 for clients
// that send full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// newTripID generates a lexicographically sortable trip identifier.
func newTripID() string {
	return ulid.Make().String()
}
