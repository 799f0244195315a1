package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetTicketInput represents the input for a ticket lookup.
type GetTicketInput struct {
	ID uuid.UUID
}

// GetTicketOutput represents the output of a ticket lookup.
type GetTicketOutput struct {
	Ticket *entity.Ticket
}

// GetTicketUseCase handles ticket lookup by id.
type GetTicketUseCase struct {
	ticketRepo adapter.TicketRepository
}

// NewGetTicketUseCase creates a new GetTicketUseCase instance.
func NewGetTicketUseCase(ticketRepo adapter.TicketRepository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo}
}

// Execute performs the lookup.
func (uc *GetTicketUseCase) Execute(ctx context.Context, input GetTicketInput) (*GetTicketOutput, error) {
	ticket, err := uc.ticketRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTicketNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeTicketNotFound,
				"ticket not found",
				domainerror.ErrTicketNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return &GetTicketOutput{Ticket: ticket}, nil
}
