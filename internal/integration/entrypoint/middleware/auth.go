// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UsernameKey is the context key for the authenticated user's username.
	UsernameKey ContextKey = "username"
	// IsAdminKey is the context key for the authenticated user's admin flag.
	IsAdminKey ContextKey = "is_admin"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer-token
// authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"authorization header is required",
				string(domainerror.ErrCodeMissingToken),
			))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"invalid authorization header format",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"token is required",
				string(domainerror.ErrCodeMissingToken),
			))
			c.Abort()
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"invalid or expired token",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"invalid or expired token",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Set(string(UsernameKey), claims.Subject)
		c.Set(string(IsAdminKey), claims.IsAdmin)

		c.Next()
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admin
// tokens. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := GetIsAdminFromContext(c)
		if !ok || !isAdmin {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				"administrator privileges required",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsernameFromContext extracts the username from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(UsernameKey))
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}

// GetIsAdminFromContext extracts the admin flag from the Gin context.
func GetIsAdminFromContext(c *gin.Context) (bool, bool) {
	isAdmin, exists := c.Get(string(IsAdminKey))
	if !exists {
		return false, false
	}
	flag, ok := isAdmin.(bool)
	return flag, ok
}
