package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// UpdateTicketPatch carries the optional fields of a ticket update.
type UpdateTicketPatch struct {
	Numbers   *string
	Cost      *decimal.Decimal
	UpdatedBy *string
}

// UpdateTicketInput represents the input for a ticket update.
type UpdateTicketInput struct {
	ID    uuid.UUID
	Patch UpdateTicketPatch
}

// UpdateTicketOutput represents the output of a ticket update.
type UpdateTicketOutput struct {
	Ticket *entity.Ticket
}

// UpdateTicketUseCase handles partial ticket updates. The user and game
// references of a ticket are immutable.
type UpdateTicketUseCase struct {
	ticketRepo adapter.TicketRepository
}

// NewUpdateTicketUseCase creates a new UpdateTicketUseCase instance.
func NewUpdateTicketUseCase(ticketRepo adapter.TicketRepository) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo}
}

// Execute applies the patch with per-field re-validation.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, input UpdateTicketInput) (*UpdateTicketOutput, error) {
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

	patch := input.Patch

	if patch.Numbers != nil {
		numbers, err := normalizeNumbers(*patch.Numbers)
		if err != nil {
			return nil, err
		}
		ticket.Numbers = numbers
	}

	if patch.Cost != nil {
		if !patch.Cost.IsPositive() {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidTicketFields,
				"ticket cost must be positive",
				domainerror.ErrNonPositiveTicketCost,
			)
		}
		ticket.Cost = *patch.Cost
	}

	if patch.UpdatedBy != nil {
		ticket.UpdatedBy = *patch.UpdatedBy
	}
	ticket.UpdatedAt = time.Now().UTC()

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return &UpdateTicketOutput{Ticket: ticket}, nil
}
