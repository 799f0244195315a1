package ticket

import (
	"context"
	"fmt"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is applied when the caller does not bound the listing.
	DefaultPageSize = 100
	// MaxPageSize caps a single listing page.
	MaxPageSize = 1000
)

// ListTicketsInput represents the pagination window for a ticket listing.
type ListTicketsInput struct {
	Skip  int
	Limit int
}

// ListTicketsOutput represents the output of a ticket listing.
type ListTicketsOutput struct {
	Tickets []*entity.Ticket
}

// ListTicketsUseCase handles paginated ticket listing.
type ListTicketsUseCase struct {
	ticketRepo adapter.TicketRepository
}

// NewListTicketsUseCase creates a new ListTicketsUseCase instance.
func NewListTicketsUseCase(ticketRepo adapter.TicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

// Execute performs the listing.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, input ListTicketsInput) (*ListTicketsOutput, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	tickets, err := uc.ticketRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return &ListTicketsOutput{Tickets: tickets}, nil
}
