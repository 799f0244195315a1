package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreateMatchRequest represents the request body for match creation.
type CreateMatchRequest struct {
	UserID  string          `json:"usuario_id" binding:"required"`
	GameID  string          `json:"juego_id" binding:"required"`
	BetCost decimal.Decimal `json:"costo_apuesta"`
	PrizeID *string         `json:"premio_id,omitempty"`
	State   string          `json:"estado" binding:"required"`
}

// UpdateMatchRequest represents the request body for a partial match update.
type UpdateMatchRequest struct {
	BetCost *decimal.Decimal `json:"costo_apuesta,omitempty"`
	PrizeID *string          `json:"premio_id,omitempty"`
	State   *string          `json:"estado,omitempty"`
}

// MatchResponse represents a single match in API responses.
type MatchResponse struct {
	ID      string          `json:"id"`
	UserID  string          `json:"usuario_id"`
	GameID  string          `json:"juego_id"`
	BetCost decimal.Decimal `json:"costo_apuesta"`
	PrizeID *string         `json:"premio_id,omitempty"`
	Date    time.Time       `json:"fecha"`
	State   string          `json:"estado"`
}

// MatchListResponse represents the response for listing matches.
type MatchListResponse struct {
	Matches []MatchResponse `json:"partidas"`
}

// ToMatchResponse converts a domain Match entity to a MatchResponse DTO.
func ToMatchResponse(match *entity.Match) MatchResponse {
	resp := MatchResponse{
		ID:      match.ID.String(),
		UserID:  match.UserID.String(),
		GameID:  match.GameID.String(),
		BetCost: match.BetCost,
		Date:    match.Date,
		State:   string(match.State),
	}
	if match.PrizeID != nil {
		prizeID := match.PrizeID.String()
		resp.PrizeID = &prizeID
	}
	return resp
}

// ToMatchListResponse converts a list of matches to a MatchListResponse.
func ToMatchListResponse(matches []*entity.Match) MatchListResponse {
	out := make([]MatchResponse, len(matches))
	for i, match := range matches {
		out[i] = ToMatchResponse(match)
	}
	return MatchListResponse{Matches: out}
}
