package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roamly/roamly/internal/auth"
)

func testAuthConfig(t *testing.T) (AuthConfig, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService("middleware-test-secret", time.Hour)
	cfg := AuthConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tokens: tokens,
	}
	return cfg, tokens
}

// identityEcho records the identity the middleware attached, if any.
func identityEcho(captured **string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := auth.IdentityFromContext(r.Context()); id != nil {
			*captured = &id.UserID
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	cfg, tokens := testAuthConfig(t)

	token, err := tokens.Issue("user-7", "carol@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var captured *string
	handler := RequireAuth(cfg)(identityEcho(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured == nil || *captured != "user-7" {
		t.Errorf("expected identity user-7 in context, got %v", captured)
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	cfg, tokens := testAuthConfig(t)

	expired := auth.NewTokenService("middleware-test-secret", -time.Minute)
	expiredToken, _ := expired.Issue("user-7", "carol@example.com")

	otherKey := auth.NewTokenService("some-other-secret", time.Hour)
	forgedToken, _ := otherKey.Issue("user-7", "carol@example.com")

	validToken, _ := tokens.Issue("user-7", "carol@example.com")

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer shape", "Token abc123"},
		{"bare key", validToken},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signature", "Bearer " + forgedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *string
			handler := RequireAuth(cfg)(identityEcho(&captured))

			req := httptest.NewRequest(http.MethodPost, "/api/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if captured != nil {
				t.Error("no identity should be attached on rejection")
			}
			// Same body for every failure mode
			if body := rec.Body.String(); body != `{"error":"Invalid or missing token","code":"UNAUTHENTICATED"}` {
				t.Errorf("unexpected error body: %s", body)
			}
		})
	}
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	cfg, tokens := testAuthConfig(t)

	token, _ := tokens.Issue("user-9", "dave@example.com")

	var captured *string
	handler := OptionalAuth(cfg)(identityEcho(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured == nil || *captured != "user-9" {
		t.Errorf("expected identity user-9, got %v", captured)
	}
}

func TestOptionalAuth_ProceedsAnonymous(t *testing.T) {
	cfg, _ := testAuthConfig(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Basic dXNlcjpwYXNz"},
		{"invalid token", "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *string
			handler := OptionalAuth(cfg)(identityEcho(&captured))

			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected 200 (anonymous pass-through), got %d", rec.Code)
			}
			if captured != nil {
				t.Error("no identity should be attached for anonymous requests")
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc", "abc"},
		{"empty", "", ""},
		{"lowercase scheme", "bearer abc", ""},
		{"no scheme", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if got := extractBearerToken(req); got != tt.want {
				t.Errorf("extractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
