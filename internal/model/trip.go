// Package model defines domain entities for the application.
package model

import "time"

// TransportMode is how the traveler gets from origin to destination.
type TransportMode string

const (
	TransportPlane TransportMode = "Plane"
	TransportTrain TransportMode = "Train"
	TransportBus   TransportMode = "Bus"
	TransportCar   TransportMode = "Car"
)

// IsValid checks if the transport mode is a known value or unset.
func (m TransportMode) IsValid() bool {
	switch m {
	case "", TransportPlane, TransportTrain, TransportBus, TransportCar:
		return true
	}
	return false
}

// Known trip status values. Status is an open set: these are the values
// the planner UI cycles through, but any string is accepted and stored.
const (
	StatusPlanning  = "Planning"
	StatusBooked    = "Booked"
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
)

// Trip represents a planned journey owned by a single user.
// UserID is nil only for legacy sample rows visible in guest mode.
type Trip struct {
	ID            string        `json:"id"`
	UserID        *string       `json:"user_id,omitempty"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	Transport     TransportMode `json:"transport,omitempty"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Accommodation *string       `json:"accommodation,omitempty"`
	Budget        *float64      `json:"budget,omitempty"`
	Travelers     int           `json:"travelers"`
	Status        string        `json:"status"`
	Activities    *string       `json:"activities,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OwnedBy reports whether the trip belongs to the given user.
func (t *Trip) OwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}
