package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreatePrizeRequest represents the request body for prize creation.
type CreatePrizeRequest struct {
	GameID      string          `json:"juego_id" binding:"required"`
	Description string          `json:"descripcion" binding:"required"`
	Value       decimal.Decimal `json:"valor"`
	CreatedBy   string          `json:"creado_por,omitempty"`
}

// UpdatePrizeRequest represents the request body for a partial prize update.
type UpdatePrizeRequest struct {
	Description *string          `json:"descripcion,omitempty"`
	Value       *decimal.Decimal `json:"valor,omitempty"`
	UpdatedBy   *string          `json:"actualizado_por,omitempty"`
}

// PrizeResponse represents a single prize in API responses.
type PrizeResponse struct {
	ID          string          `json:"id"`
	GameID      string          `json:"juego_id"`
	Description string          `json:"descripcion"`
	Value       decimal.Decimal `json:"valor"`
	CreatedBy   string          `json:"creado_por,omitempty"`
	UpdatedBy   string          `json:"actualizado_por,omitempty"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
	UpdatedAt   time.Time       `json:"fecha_actualizacion"`
}

// PrizeListResponse represents the response for listing prizes.
type PrizeListResponse struct {
	Prizes []PrizeResponse `json:"premios"`
}

// ToPrizeResponse converts a domain Prize entity to a PrizeResponse DTO.
func ToPrizeResponse(prize *entity.Prize) PrizeResponse {
	return PrizeResponse{
		ID:          prize.ID.String(),
		GameID:      prize.GameID.String(),
		Description: prize.Description,
		Value:       prize.Value,
		CreatedBy:   prize.CreatedBy,
		UpdatedBy:   prize.UpdatedBy,
		CreatedAt:   prize.CreatedAt,
		UpdatedAt:   prize.UpdatedAt,
	}
}

// ToPrizeListResponse converts a list of prizes to a PrizeListResponse.
func ToPrizeListResponse(prizes []*entity.Prize) PrizeListResponse {
	out := make([]PrizeResponse, len(prizes))
	for i, prize := range prizes {
		out[i] = ToPrizeResponse(prize)
	}
	return PrizeListResponse{Prizes: out}
}
