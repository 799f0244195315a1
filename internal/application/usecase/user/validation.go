// Package user contains user account use cases.
package user

import (
	"regexp"
	"strings"

	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

const (
	// MaxNameLength is the maximum allowed length for a user's display name.
	MaxNameLength = 100
)

// Field format patterns, compiled once at package level.
var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[\d\s\-()]{7,15}$`)
	ageRegex      = regexp.MustCompile(`^\d{1,3}$`)
)

// normalizeIdentifier lower-cases and trims a username or email so that
// lookups and uniqueness checks are case-insensitive.
func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewUserError(
			domainerror.ErrCodeMissingName,
			"name is required",
			domainerror.ErrMissingName,
		)
	}
	if len(name) > MaxNameLength {
		return domainerror.NewUserError(
			domainerror.ErrCodeNameTooLong,
			"name must not exceed 100 characters",
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func validateUsernameFormat(username string) error {
	if !usernameRegex.MatchString(username) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidUsername,
			"username must be 3-20 characters of letters, digits and underscores",
			domainerror.ErrInvalidUsername,
		)
	}
	return nil
}

func validateEmailFormat(email string) error {
	if !emailRegex.MatchString(email) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	return nil
}

func validatePhoneFormat(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRegex.MatchString(phone) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidPhone,
			"invalid phone format",
			domainerror.ErrInvalidPhone,
		)
	}
	return nil
}

func validateAge(age string) error {
	if age == "" {
		return nil
	}
	if !ageRegex.MatchString(age) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidAge,
			"age must be numeric",
			domainerror.ErrInvalidAge,
		)
	}
	return nil
}
