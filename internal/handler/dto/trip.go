package dto

import (
	"time"

	"github.com/roamly/roamly/internal/model"
)

// TripRequest represents the request body for creating or updating a
// trip. Dates are YYYY-MM-DD strings.
type TripRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Transport     string   `json:"transport,omitempty"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date,omitempty"`
	Accommodation *string  `json:"accommodation,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	Travelers     int      `json:"travelers,omitempty"`
	Status        string   `json:"status,omitempty"`
	Activities    *string  `json:"activities,omitempty"`
}

// TripResponse represents a trip in API responses.
type TripResponse struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Transport     string    `json:"transport,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date,omitempty"`
	Accommodation *string   `json:"accommodation,omitempty"`
	Budget        *float64  `json:"budget,omitempty"`
	Travelers     int       `json:"travelers"`
	Status        string    `json:"status"`
	Activities    *string   `json:"activities,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToTripResponse converts a Trip model to TripResponse DTO.
// The owner ID is deliberately omitted from responses.
func ToTripResponse(trip *model.Trip) *TripResponse {
	resp := &TripResponse{
		ID:            trip.ID,
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		Transport:     string(trip.Transport),
		StartDate:     trip.StartDate.Format(time.DateOnly),
		Accommodation: trip.Accommodation,
		Budget:        trip.Budget,
		Travelers:     trip.Travelers,
		Status:        trip.Status,
		Activities:    trip.Activities,
		CreatedAt:     trip.CreatedAt,
	}

	if trip.EndDate != nil {
		end := trip.EndDate.Format(time.DateOnly)
		resp.EndDate = &end
	}

	return resp
}

// ToTripListResponse converts a slice of Trip models to response DTOs.
func ToTripListResponse(trips []*model.Trip) []TripResponse {
	responses := make([]TripResponse, len(trips))
	for i, trip := range trips {
		responses[i] = *ToTripResponse(trip)
	}
	return responses
}
