package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// TicketRepository defines the interface for ticket persistence operations.
type TicketRepository interface {
	// Create creates a new ticket in the database.
	Create(ctx context.Context, ticket *entity.Ticket) error

	// FindByID retrieves a ticket by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// List retrieves tickets with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Ticket, error)

	// Update persists all fields of an existing ticket.
	Update(ctx context.Context, ticket *entity.Ticket) error

	// Delete removes a ticket from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
