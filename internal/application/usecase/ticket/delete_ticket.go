package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeleteTicketInput represents the input for a ticket deletion.
type DeleteTicketInput struct {
	ID uuid.UUID
}

// DeleteTicketUseCase removes a ticket.
type DeleteTicketUseCase struct {
	ticketRepo adapter.TicketRepository
}

// NewDeleteTicketUseCase creates a new DeleteTicketUseCase instance.
func NewDeleteTicketUseCase(ticketRepo adapter.TicketRepository) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo}
}

// Execute performs the deletion.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, input DeleteTicketInput) error {
	if _, err := uc.ticketRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrTicketNotFound) {
			return domainerror.NewEntityError(
				domainerror.ErrCodeTicketNotFound,
				"ticket not found",
				domainerror.ErrTicketNotFound,
			)
		}
		return fmt.Errorf("failed to find ticket: %w", err)
	}
	if err := uc.ticketRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}
