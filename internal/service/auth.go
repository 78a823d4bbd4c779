package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roamly/roamly/internal/auth"
	"github.com/roamly/roamly/internal/metrics"
	"github.com/roamly/roamly/internal/model"
	"github.com/roamly/roamly/internal/repository"
)

// dummyHash is compared against when login hits an unknown email, so the
// unknown-email and wrong-password paths cost roughly the same.
var dummyHash, _ = auth.HashPassword("roamly-timing-filler")

// AuthService handles registration and login.
type AuthService struct {
	repo    *repository.Repository
	tokens  *auth.TokenService
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, tokens *auth.TokenService, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Register creates a new account and returns it with a fresh bearer token.
// The plaintext password only exists on the stack of this call; storage
// holds the bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*model.User, string, error) {
	if email == "" {
		return nil, "", newValidationError("email", "email is required")
	}
	if password == "" {
		return nil, "", newValidationError("password", "password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, "", newValidationError("password", "password is too long")
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, token, nil
}

// Login authenticates an email/password pair and returns the account
// with a fresh bearer token. Unknown email and wrong password produce
// the identical ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" {
		return nil, "", newValidationError("email", "email is required")
	}
	if password == "" {
		return nil, "", newValidationError("password", "password is required")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a comparison anyway; see dummyHash.
			auth.VerifyPassword(password, dummyHash)
			s.metrics.IncLoginFailure()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.IncLoginFailure()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return user, token, nil
}
