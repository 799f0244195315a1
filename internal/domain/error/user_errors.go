// Package error defines domain-specific errors for the betting platform.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already registered")

	// ErrEmailAlreadyExists is returned when the email is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidUsername is returned when the username format is invalid.
	ErrInvalidUsername = errors.New("username must be 3-20 characters of letters, digits and underscores")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone is returned when the phone format is invalid.
	ErrInvalidPhone = errors.New("invalid phone format")

	// ErrMissingName is returned when the name is empty.
	ErrMissingName = errors.New("name is required")

	// ErrNameTooLong is returned when the name exceeds 100 characters.
	ErrNameTooLong = errors.New("name must not exceed 100 characters")

	// ErrInvalidAge is returned when the age is not a numeric string.
	ErrInvalidAge = errors.New("age must be numeric")

	// ErrMissingPassword is returned when no password was supplied.
	ErrMissingPassword = errors.New("password is required")

	// ErrWeakPassword is returned when the password fails the strength rules.
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrWrongCurrentPassword is returned on password change when the current
	// password does not verify.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

// UserErrorCode defines error codes for user errors.
// Format: USER-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingName     UserErrorCode = "USER-010001"
	ErrCodeNameTooLong     UserErrorCode = "USER-010002"
	ErrCodeInvalidUsername UserErrorCode = "USER-010003"
	ErrCodeInvalidEmail    UserErrorCode = "USER-010004"
	ErrCodeInvalidPhone    UserErrorCode = "USER-010005"
	ErrCodeInvalidAge      UserErrorCode = "USER-010006"
	ErrCodeMissingPassword UserErrorCode = "USER-010007"
	ErrCodeWeakPassword    UserErrorCode = "USER-010008"

	// Uniqueness errors (02XXXX)
	ErrCodeUsernameExists UserErrorCode = "USER-020001"
	ErrCodeEmailExists    UserErrorCode = "USER-020002"

	// Lookup errors (03XXXX)
	ErrCodeUserNotFound UserErrorCode = "USER-030001"

	// Password change errors (04XXXX)
	ErrCodeWrongCurrentPassword UserErrorCode = "USER-040001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
