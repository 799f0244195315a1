package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeleteMovementInput represents the input for a ledger entry deletion.
type DeleteMovementInput struct {
	ID uuid.UUID
}

// DeleteMovementUseCase removes a ledger entry (administrative correction).
type DeleteMovementUseCase struct {
	movementRepo adapter.BalanceMovementRepository
}

// NewDeleteMovementUseCase creates a new DeleteMovementUseCase instance.
func NewDeleteMovementUseCase(movementRepo adapter.BalanceMovementRepository) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{movementRepo: movementRepo}
}

// Execute performs the deletion.
func (uc *DeleteMovementUseCase) Execute(ctx context.Context, input DeleteMovementInput) error {
	if _, err := uc.movementRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return domainerror.NewEntityError(
				domainerror.ErrCodeMovementNotFound,
				"balance movement not found",
				domainerror.ErrMovementNotFound,
			)
		}
		return fmt.Errorf("failed to find movement: %w", err)
	}
	if err := uc.movementRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}
	return nil
}
