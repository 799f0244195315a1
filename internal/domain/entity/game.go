// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game represents a playable game (bingo, roulette, lottery, ...).
type Game struct {
	ID          uuid.UUID
	Name        string
	Description string
	BaseCost    decimal.Decimal
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGame creates a new Game entity.
func NewGame(name, description string, baseCost decimal.Decimal, createdBy string) *Game {
	now := time.Now().UTC()
	return &Game{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		BaseCost:    baseCost,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
