// Package model defines domain entities for the application.
package model

// Identity is the resolved caller identity attached to a request
// after bearer token verification.
type Identity struct {
	UserID string
	Email  string
}
