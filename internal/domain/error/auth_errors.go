// Package error defines domain-specific errors for the betting platform.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown identifier, wrong password or inactive account. Callers must
	// not be able to tell these cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials or inactive account")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingClaim is returned when a required claim is absent from a token.
	ErrMissingClaim = errors.New("token is missing a required claim")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeMissingCredentials AuthErrorCode = "AUTH-010001"
	ErrCodePasswordTooShort   AuthErrorCode = "AUTH-010002"
	ErrCodeMalformedEmail     AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010005"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"
	ErrCodeMissingClaim AuthErrorCode = "AUTH-020004"

	// Admin bootstrap errors (03XXXX)
	ErrCodeAdminBootstrap AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
