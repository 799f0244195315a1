// Package error defines domain-specific errors for the betting platform.
package error

import "errors"

// Sentinel errors for the game, match, ticket, prize and balance domains.
var (
	ErrGameNotFound           = errors.New("game not found")
	ErrMissingGameName        = errors.New("game name is required")
	ErrInvalidGameName        = errors.New("game name must be 2-100 characters")
	ErrNegativeBaseCost       = errors.New("base cost must not be negative")
	ErrMissingCreatedBy       = errors.New("created_by is required")
	ErrMatchNotFound          = errors.New("match not found")
	ErrInvalidMatchState      = errors.New("match state must be one of: ganada, perdida, en curso")
	ErrNegativeBetCost        = errors.New("bet cost must not be negative")
	ErrTicketNotFound         = errors.New("ticket not found")
	ErrInvalidTicketNumbers   = errors.New("ticket numbers must be integers separated by commas")
	ErrNonPositiveTicketCost  = errors.New("ticket cost must be positive")
	ErrPrizeNotFound          = errors.New("prize not found")
	ErrInvalidPrizeDesc       = errors.New("prize description must be 2-255 characters")
	ErrNegativePrizeValue     = errors.New("prize value must not be negative")
	ErrMovementNotFound       = errors.New("balance movement not found")
	ErrInvalidMovementType    = errors.New("movement type must be one of: recarga, apuesta, premio")
	ErrNonPositiveAmount      = errors.New("movement amount must be positive")
)

// EntityErrorCode defines error codes shared by the simple CRUD domains.
// Format: <DOMAIN>-XXYYYY where XX is category and YYYY is specific error.
type EntityErrorCode string

const (
	ErrCodeGameNotFound      EntityErrorCode = "GAME-020001"
	ErrCodeInvalidGameFields EntityErrorCode = "GAME-010001"

	ErrCodeMatchNotFound      EntityErrorCode = "MATCH-020001"
	ErrCodeInvalidMatchFields EntityErrorCode = "MATCH-010001"

	ErrCodeTicketNotFound      EntityErrorCode = "TICKET-020001"
	ErrCodeInvalidTicketFields EntityErrorCode = "TICKET-010001"

	ErrCodePrizeNotFound      EntityErrorCode = "PRIZE-020001"
	ErrCodeInvalidPrizeFields EntityErrorCode = "PRIZE-010001"

	ErrCodeMovementNotFound      EntityErrorCode = "BAL-020001"
	ErrCodeInvalidMovementFields EntityErrorCode = "BAL-010001"
)

// EntityError represents a CRUD-domain error with code and message.
// The auth and user domains carry their own richer error types; the
// remaining table-backed domains share this one.
type EntityError struct {
	Code    EntityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError creates a new EntityError with the given code and message.
func NewEntityError(code EntityErrorCode, message string, err error) *EntityError {
	return &EntityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFoundCode reports whether code denotes a missing record. The
// controllers use it to map domain errors to 404 responses.
func IsNotFoundCode(code EntityErrorCode) bool {
	switch code {
	case ErrCodeGameNotFound, ErrCodeMatchNotFound, ErrCodeTicketNotFound,
		ErrCodePrizeNotFound, ErrCodeMovementNotFound:
		return true
	}
	return false
}
