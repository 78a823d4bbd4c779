// Command bootstrap-user creates an account directly in the database and
// prints a ready-to-use bearer token. Useful for seeding demo
// environments without going through the HTTP API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/roamly/roamly/internal/auth"
	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/model"
	"github.com/roamly/roamly/internal/repository"
)

type output struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "demo@roamly.local", "Account email")
		password    = flag.String("password", "", "Account password (required)")
		name        = flag.String("name", "Demo Traveler", "Display name")
		jwtSecret   = flag.String("jwt-secret", envOrDefault("JWT_SECRET", config.DefaultJWTSecret), "Token signing secret")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}

	user, err := ensureUser(ctx, repo, *email, *password, *name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	tokens := auth.NewTokenService(*jwtSecret, auth.DefaultTokenTTL)
	token, err := tokens.Issue(user.ID, user.Email)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue token:", err)
		os.Exit(1)
	}

	result := output{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, "encode output:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("user_id:", result.UserID)
	fmt.Println("email:  ", result.Email)
	fmt.Println("token:  ", result.Token)
}

func ensureUser(ctx context.Context, repo *repository.Repository, email, password, name string) (*model.User, error) {
	if existing, err := repo.GetUserByEmail(ctx, email); err == nil {
		return existing, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         &name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
