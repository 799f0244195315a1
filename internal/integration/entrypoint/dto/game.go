package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreateGameRequest represents the request body for game creation.
type CreateGameRequest struct {
	Name        string          `json:"nombre" binding:"required"`
	Description string          `json:"descripcion,omitempty"`
	BaseCost    decimal.Decimal `json:"costo_base"`
	CreatedBy   string          `json:"creado_por" binding:"required"`
}

// UpdateGameRequest represents the request body for a partial game update.
type UpdateGameRequest struct {
	Name        *string          `json:"nombre,omitempty"`
	Description *string          `json:"descripcion,omitempty"`
	BaseCost    *decimal.Decimal `json:"costo_base,omitempty"`
	UpdatedBy   *string          `json:"actualizado_por,omitempty"`
}

// GameResponse represents a single game in API responses.
type GameResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	BaseCost    decimal.Decimal `json:"costo_base"`
	CreatedBy   string          `json:"creado_por"`
	UpdatedBy   string          `json:"actualizado_por,omitempty"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
	UpdatedAt   time.Time       `json:"fecha_actualizacion"`
}

// GameListResponse represents the response for listing games.
type GameListResponse struct {
	Games []GameResponse `json:"juegos"`
}

// ToGameResponse converts a domain Game entity to a GameResponse DTO.
func ToGameResponse(game *entity.Game) GameResponse {
	return GameResponse{
		ID:          game.ID.String(),
		Name:        game.Name,
		Description: game.Description,
		BaseCost:    game.BaseCost,
		CreatedBy:   game.CreatedBy,
		UpdatedBy:   game.UpdatedBy,
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}
}

// ToGameListResponse converts a list of games to a GameListResponse.
func ToGameListResponse(games []*entity.Game) GameListResponse {
	out := make([]GameResponse, len(games))
	for i, game := range games {
		out[i] = ToGameResponse(game)
	}
	return GameListResponse{Games: out}
}
