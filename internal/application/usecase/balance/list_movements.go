package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is applied when the caller does not bound the listing.
	DefaultPageSize = 100
	// MaxPageSize caps a single listing page.
	MaxPageSize = 1000
)

// ListMovementsInput represents the filters for a ledger listing. When
// UserID is set, the full ledger of that user is returned, newest first.
type ListMovementsInput struct {
	Skip   int
	Limit  int
	UserID *uuid.UUID
}

// ListMovementsOutput represents the output of a ledger listing.
type ListMovementsOutput struct {
	Movements []*entity.BalanceMovement
}

// ListMovementsUseCase handles ledger listing.
type ListMovementsUseCase struct {
	movementRepo adapter.BalanceMovementRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(movementRepo adapter.BalanceMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// Execute performs the listing.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
	if input.UserID != nil {
		movements, err := uc.movementRepo.ListByUser(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list movements by user: %w", err)
		}
		return &ListMovementsOutput{Movements: movements}, nil
	}

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

	movements, err := uc.movementRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return &ListMovementsOutput{Movements: movements}, nil
}
