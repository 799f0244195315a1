package adapter

import (
	"time"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// TokenClaims carries the identity claims embedded in an access token.
type TokenClaims struct {
	Subject   string
	UserID    string
	Email     string
	Name      string
	IsAdmin   bool
	TokenType string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying access tokens.
type TokenService interface {
	// Issue signs a new access token for the given user with the configured
	// default expiry.
	Issue(user *entity.User) (string, error)

	// IssueWithTTL signs a new access token expiring exactly ttl from now.
	// A zero or negative ttl yields an already-expired token.
	IssueWithTTL(user *entity.User, ttl time.Duration) (string, error)

	// Verify parses and validates a token, returning its claims. Expired or
	// malformed tokens yield ErrExpiredToken / ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)

	// ExtractClaim returns a single named claim from a valid token.
	ExtractClaim(token, name string) (any, error)
}
