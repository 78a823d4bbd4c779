// Package auth provides password hashing and bearer token handling.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost of already-stored account hashes.
const bcryptCost = 10

// ErrPasswordTooLong indicates the password exceeds bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// HashPassword creates a salted bcrypt hash of the password.
// The plaintext is not retained anywhere after hashing.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks the password against a stored bcrypt hash.
// bcrypt's comparison is constant-time for matching-length inputs.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
