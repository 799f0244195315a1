// Package balance contains balance-movement ledger use cases.
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

// CreateMovementInput represents the input for a ledger entry creation.
type CreateMovementInput struct {
	UserID uuid.UUID
	Type   string
	Amount decimal.Decimal
}

// CreateMovementOutput represents the output of a ledger entry creation.
type CreateMovementOutput struct {
	Movement *entity.BalanceMovement
}

// CreateMovementUseCase handles ledger entry creation logic.
type CreateMovementUseCase struct {
	movementRepo adapter.BalanceMovementRepository
	userRepo     adapter.UserRepository
}

// NewCreateMovementUseCase creates a new CreateMovementUseCase instance.
func NewCreateMovementUseCase(
	movementRepo adapter.BalanceMovementRepository,
	userRepo adapter.UserRepository,
) *CreateMovementUseCase {
	return &CreateMovementUseCase{
		movementRepo: movementRepo,
		userRepo:     userRepo,
	}
}

// Execute performs the ledger entry creation. The referenced user must exist.
func (uc *CreateMovementUseCase) Execute(ctx context.Context, input CreateMovementInput) (*CreateMovementOutput, error) {
	movementType := entity.MovementType(strings.ToLower(strings.TrimSpace(input.Type)))
	if !entity.IsValidMovementType(movementType) {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidMovementFields,
			"movement type must be one of: recarga, apuesta, premio",
			domainerror.ErrInvalidMovementType,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidMovementFields,
			"movement amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMovementFields,
				"referenced user does not exist",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	movement := entity.NewBalanceMovement(input.UserID, movementType, input.Amount)
	if err := uc.movementRepo.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}
	return &CreateMovementOutput{Movement: movement}, nil
}
