package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_IssueVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("user-42", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if identity.UserID != "user-42" {
		t.Errorf("UserID = %q, want %q", identity.UserID, "user-42")
	}
	if identity.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", identity.Email, "alice@example.com")
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", 0)
	if svc.TTL() != DefaultTokenTTL {
		t.Errorf("TTL = %v, want %v", svc.TTL(), DefaultTokenTTL)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "header.payload"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", "bob@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret should fail, got: %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("user-1", "bob@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token should fail verification, got: %v", err)
	}
}
