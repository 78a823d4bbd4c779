// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that owns trips.
// PasswordHash is never included in API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
