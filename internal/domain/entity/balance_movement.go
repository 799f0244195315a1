// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType classifies a balance movement. Wire values stay in Spanish
// to preserve the original API contract.
type MovementType string

const (
	MovementTypeTopUp MovementType = "recarga"
	MovementTypeBet   MovementType = "apuesta"
	MovementTypePrize MovementType = "premio"
)

// IsValidMovementType reports whether t is one of the accepted movement types.
func IsValidMovementType(t MovementType) bool {
	switch t {
	case MovementTypeTopUp, MovementTypeBet, MovementTypePrize:
		return true
	}
	return false
}

// BalanceMovement is one entry of a user's money ledger ("historial de saldo").
type BalanceMovement struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Type   MovementType
	Amount decimal.Decimal
	Date   time.Time
}

// NewBalanceMovement creates a new ledger entry.
func NewBalanceMovement(userID uuid.UUID, movementType MovementType, amount decimal.Decimal) *BalanceMovement {
	return &BalanceMovement{
		ID:     uuid.New(),
		UserID: userID,
		Type:   movementType,
		Amount: amount,
		Date:   time.Now().UTC(),
	}
}
