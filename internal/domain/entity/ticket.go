// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket represents a purchased game ticket ("boleto") for games that use
// them (bingo, lottery). Numbers is a comma-separated list of integers,
// e.g. "5,10,23,45".
type Ticket struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GameID    uuid.UUID
	Numbers   string
	Cost      decimal.Decimal
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTicket creates a new Ticket entity.
func NewTicket(userID, gameID uuid.UUID, numbers string, cost decimal.Decimal, createdBy string) *Ticket {
	now := time.Now().UTC()
	return &Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		GameID:    gameID,
		Numbers:   numbers,
		Cost:      cost,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
