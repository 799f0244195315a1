package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreateTicketRequest represents the request body for ticket creation.
type CreateTicketRequest struct {
	UserID    string          `json:"usuario_id" binding:"required"`
	GameID    string          `json:"juego_id" binding:"required"`
	Numbers   string          `json:"numeros" binding:"required"`
	Cost      decimal.Decimal `json:"costo"`
	CreatedBy string          `json:"creado_por" binding:"required"`
}

// UpdateTicketRequest represents the request body for a partial ticket update.
type UpdateTicketRequest struct {
	Numbers   *string          `json:"numeros,omitempty"`
	Cost      *decimal.Decimal `json:"costo,omitempty"`
	UpdatedBy *string          `json:"actualizado_por,omitempty"`
}

// TicketResponse represents a single ticket in API responses.
type TicketResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"usuario_id"`
	GameID    string          `json:"juego_id"`
	Numbers   string          `json:"numeros"`
	Cost      decimal.Decimal `json:"costo"`
	CreatedBy string          `json:"creado_por"`
	UpdatedBy string          `json:"actualizado_por,omitempty"`
	CreatedAt time.Time       `json:"fecha_creacion"`
	UpdatedAt time.Time       `json:"fecha_actualizacion"`
}

// TicketListResponse represents the response for listing tickets.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"boletos"`
}

// ToTicketResponse converts a domain Ticket entity to a TicketResponse DTO.
func ToTicketResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID.String(),
		UserID:    ticket.UserID.String(),
		GameID:    ticket.GameID.String(),
		Numbers:   ticket.Numbers,
		Cost:      ticket.Cost,
		CreatedBy: ticket.CreatedBy,
		UpdatedBy: ticket.UpdatedBy,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// ToTicketListResponse converts a list of tickets to a TicketListResponse.
func ToTicketListResponse(tickets []*entity.Ticket) TicketListResponse {
	out := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		out[i] = ToTicketResponse(ticket)
	}
	return TicketListResponse{Tickets: out}
}
