package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreateMovementRequest represents the request body for a ledger entry.
type CreateMovementRequest struct {
	UserID string          `json:"usuario_id" binding:"required"`
	Type   string          `json:"tipo" binding:"required"`
	Amount decimal.Decimal `json:"monto"`
}

// UpdateMovementRequest represents the request body for a ledger correction.
type UpdateMovementRequest struct {
	Type   *string          `json:"tipo,omitempty"`
	Amount *decimal.Decimal `json:"monto,omitempty"`
}

// MovementResponse represents a single ledger entry in API responses.
type MovementResponse struct {
	ID     string          `json:"id"`
	UserID string          `json:"usuario_id"`
	Type   string          `json:"tipo"`
	Amount decimal.Decimal `json:"monto"`
	Date   time.Time       `json:"fecha"`
}

// MovementListResponse represents the response for listing ledger entries.
type MovementListResponse struct {
	Movements []MovementResponse `json:"historial_saldo"`
}

// ToMovementResponse converts a domain BalanceMovement to a MovementResponse DTO.
func ToMovementResponse(movement *entity.BalanceMovement) MovementResponse {
	return MovementResponse{
		ID:     movement.ID.String(),
		UserID: movement.UserID.String(),
		Type:   string(movement.Type),
		Amount: movement.Amount,
		Date:   movement.Date,
	}
}

// ToMovementListResponse converts a list of movements to a MovementListResponse.
func ToMovementListResponse(movements []*entity.BalanceMovement) MovementListResponse {
	out := make([]MovementResponse, len(movements))
	for i, movement := range movements {
		out[i] = ToMovementResponse(movement)
	}
	return MovementListResponse{Movements: out}
}
