// Package model defines domain entities for the application.
package model

import "time"

// City is shared reference data for trip planning.
// Cities are seeded once and read-only through the API.
type City struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
