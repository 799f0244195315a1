// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prize represents a prize ("premio") attached to a game.
type Prize struct {
	ID          uuid.UUID
	GameID      uuid.UUID
	Description string
	Value       decimal.Decimal
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPrize creates a new Prize entity.
func NewPrize(gameID uuid.UUID, description string, value decimal.Decimal, createdBy string) *Prize {
	now := time.Now().UTC()
	return &Prize{
		ID:          uuid.New(),
		GameID:      gameID,
		Description: description,
		Value:       value,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
