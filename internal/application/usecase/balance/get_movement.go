package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetMovementInput represents the input for a ledger entry lookup.
type GetMovementInput struct {
	ID uuid.UUID
}

// GetMovementOutput represents the output of a ledger entry lookup.
type GetMovementOutput struct {
	Movement *entity.BalanceMovement
}

// GetMovementUseCase handles ledger entry lookup by id.
type GetMovementUseCase struct {
	movementRepo adapter.BalanceMovementRepository
}

// NewGetMovementUseCase creates a new GetMovementUseCase instance.
func NewGetMovementUseCase(movementRepo adapter.BalanceMovementRepository) *GetMovementUseCase {
	return &GetMovementUseCase{movementRepo: movementRepo}
}

// Execute performs the lookup.
func (uc *GetMovementUseCase) Execute(ctx context.Context, input GetMovementInput) (*GetMovementOutput, error) {
	movement, err := uc.movementRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeMovementNotFound,
				"balance movement not found",
				domainerror.ErrMovementNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find movement: %w", err)
	}
	return &GetMovementOutput{Movement: movement}, nil
}
