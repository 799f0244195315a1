// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// tokenTypeAccess is the type marker embedded in every issued token.
const tokenTypeAccess = "access_token"

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with HS256
// signed JWTs. The secret is injected; there is no environment fallback.
type tokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, defaultTTL time.Duration) adapter.TokenService {
	return &tokenService{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue signs a new access token with the configured default expiry.
func (s *tokenService) Issue(user *entity.User) (string, error) {
	return s.IssueWithTTL(user, s.defaultTTL)
}

// IssueWithTTL signs a new access token expiring exactly ttl from now. A
// zero or negative ttl yields an already-expired token.
func (s *tokenService) IssueWithTTL(user *entity.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, checking signature, expiry and the
// access-token type marker.
func (s *tokenService) Verify(tokenString string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token type",
			domainerror.ErrInvalidToken,
		)
	}

	out := &adapter.TokenClaims{
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		IsAdmin:   claims.IsAdmin,
		TokenType: claims.TokenType,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// ExtractClaim returns a single named claim from a valid token.
func (s *tokenService) ExtractClaim(tokenString, name string) (any, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	switch name {
	case "sub":
		return claims.Subject, nil
	case "user_id":
		return claims.UserID, nil
	case "email":
		return claims.Email, nil
	case "name":
		return claims.Name, nil
	case "is_admin":
		return claims.IsAdmin, nil
	case "type":
		return claims.TokenType, nil
	case "iat":
		return claims.IssuedAt, nil
	case "exp":
		return claims.ExpiresAt, nil
	}
	return nil, domainerror.NewAuthError(
		domainerror.ErrCodeMissingClaim,
		fmt.Sprintf("token is missing claim %q", name),
		domainerror.ErrMissingClaim,
	)
}

func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}
	return claims, nil
}
