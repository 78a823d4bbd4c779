// Package service provides business logic for the application.
package service

import "errors"

// Service errors.
var (
	// ErrEmailExists is returned when registering an email that is already taken.
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes are deliberately not distinguishable by the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTripNotFound is returned when a trip is absent or owned by someone else.
	ErrTripNotFound = errors.New("trip not found")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// newValidationError builds a field-level validation failure.
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
