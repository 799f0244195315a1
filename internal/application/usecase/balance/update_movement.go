package balance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// UpdateMovementPatch carries the optional fields of a ledger correction.
// The user reference of a movement is immutable.
type UpdateMovementPatch struct {
	Type   *string
	Amount *decimal.Decimal
}

// UpdateMovementInput represents the input for a ledger correction.
type UpdateMovementInput struct {
	ID    uuid.UUID
	Patch UpdateMovementPatch
}

// UpdateMovementOutput represents the output of a ledger correction.
type UpdateMovementOutput struct {
	Movement *entity.BalanceMovement
}

// UpdateMovementUseCase handles administrative corrections of ledger entries.
type UpdateMovementUseCase struct {
	movementRepo adapter.BalanceMovementRepository
}

// NewUpdateMovementUseCase creates a new UpdateMovementUseCase instance.
func NewUpdateMovementUseCase(movementRepo adapter.BalanceMovementRepository) *UpdateMovementUseCase {
	return &UpdateMovementUseCase{movementRepo: movementRepo}
}

// Execute applies the patch with per-field re-validation.
func (uc *UpdateMovementUseCase) Execute(ctx context.Context, input UpdateMovementInput) (*UpdateMovementOutput, error) {
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

	patch := input.Patch

	if patch.Type != nil {
		movementType := entity.MovementType(strings.ToLower(strings.TrimSpace(*patch.Type)))
		if !entity.IsValidMovementType(movementType) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMovementFields,
				"movement type must be one of: recarga, apuesta, premio",
				domainerror.ErrInvalidMovementType,
			)
		}
		movement.Type = movementType
	}

	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMovementFields,
				"movement amount must be positive",
				domainerror.ErrNonPositiveAmount,
			)
		}
		movement.Amount = *patch.Amount
	}

	if err := uc.movementRepo.Update(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to update movement: %w", err)
	}
	return &UpdateMovementOutput{Movement: movement}, nil
}
