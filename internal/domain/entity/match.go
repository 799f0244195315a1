// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchState represents the state of a match. The wire values are kept in
// Spanish to preserve the original API contract.
type MatchState string

const (
	MatchStateWon        MatchState = "ganada"
	MatchStateLost       MatchState = "perdida"
	MatchStateInProgress MatchState = "en curso"
)

// IsValidMatchState reports whether s is one of the accepted match states.
func IsValidMatchState(s MatchState) bool {
	switch s {
	case MatchStateWon, MatchStateLost, MatchStateInProgress:
		return true
	}
	return false
}

// Match represents one play of a game by a user ("partida").
type Match struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	GameID  uuid.UUID
	BetCost decimal.Decimal
	PrizeID *uuid.UUID
	Date    time.Time
	State   MatchState
}

// NewMatch creates a new Match entity.
func NewMatch(userID, gameID uuid.UUID, betCost decimal.Decimal, prizeID *uuid.UUID, state MatchState) *Match {
	return &Match{
		ID:      uuid.New(),
		UserID:  userID,
		GameID:  gameID,
		BetCost: betCost,
		PrizeID: prizeID,
		Date:    time.Now().UTC(),
		State:   state,
	}
}
