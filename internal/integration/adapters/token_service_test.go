package adapters

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Maria Lopez",
		Username: "maria",
		Email:    "maria@example.com",
		Active:   true,
		IsAdmin:  true,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	user := testUser()

	t.Run("issue then verify roundtrip", func(t *testing.T) {
		token, err := service.IssueWithTTL(user, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if claims.Subject != "maria" {
			t.Errorf("expected subject 'maria', got %q", claims.Subject)
		}
		if claims.UserID != user.ID.String() {
			t.Errorf("expected user_id %q, got %q", user.ID.String(), claims.UserID)
		}
		if claims.Email != "maria@example.com" {
			t.Errorf("expected email claim, got %q", claims.Email)
		}
		if claims.Name != "Maria Lopez" {
			t.Errorf("expected name claim, got %q", claims.Name)
		}
		if !claims.IsAdmin {
			t.Error("expected is_admin claim to be true")
		}
		if claims.TokenType != "access_token" {
			t.Errorf("expected type 'access_token', got %q", claims.TokenType)
		}
	})

	t.Run("issue uses the configured default ttl", func(t *testing.T) {
		token, err := service.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
		if ttl != time.Hour {
			t.Errorf("expected 1h expiry from default, got %v", ttl)
		}
	})

	t.Run("zero ttl mints an already-expired token", func(t *testing.T) {
		token, err := service.IssueWithTTL(user, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = service.Verify(token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("expired token yields ErrExpiredToken", func(t *testing.T) {
		token, err := service.IssueWithTTL(user, -time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = service.Verify(token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeExpiredToken {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeExpiredToken, err)
		}
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		otherService := NewTokenService("other-secret", time.Hour)
		token, err := otherService.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = service.Verify(token)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		_, err := service.Verify("not.a.token")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestTokenService_ExtractClaim(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	user := testUser()

	token, err := service.Issue(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("extracts known claims", func(t *testing.T) {
		sub, err := service.ExtractClaim(token, "sub")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub != "maria" {
			t.Errorf("expected 'maria', got %v", sub)
		}

		isAdmin, err := service.ExtractClaim(token, "is_admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if isAdmin != true {
			t.Errorf("expected true, got %v", isAdmin)
		}

		tokenType, err := service.ExtractClaim(token, "type")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tokenType != "access_token" {
			t.Errorf("expected 'access_token', got %v", tokenType)
		}
	})

	t.Run("unknown claim yields ErrMissingClaim", func(t *testing.T) {
		_, err := service.ExtractClaim(token, "favorite_color")
		if !errors.Is(err, domainerror.ErrMissingClaim) {
			t.Errorf("expected ErrMissingClaim, got %v", err)
		}
	})

	t.Run("invalid token yields ErrInvalidToken", func(t *testing.T) {
		_, err := service.ExtractClaim("garbage", "sub")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
