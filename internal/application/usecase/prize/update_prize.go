package prize

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

// UpdatePrizePatch carries the optional fields of a prize update. The game
// reference of a prize is immutable.
type UpdatePrizePatch struct {
	Description *string
	Value       *decimal.Decimal
	UpdatedBy   *string
}

// UpdatePrizeInput represents the input for a prize update.
type UpdatePrizeInput struct {
	ID    uuid.UUID
	Patch UpdatePrizePatch
}

// UpdatePrizeOutput represents the output of a prize update.
type UpdatePrizeOutput struct {
	Prize *entity.Prize
}

// UpdatePrizeUseCase handles partial prize updates.
type UpdatePrizeUseCase struct {
	prizeRepo adapter.PrizeRepository
}

// NewUpdatePrizeUseCase creates a new UpdatePrizeUseCase instance.
func NewUpdatePrizeUseCase(prizeRepo adapter.PrizeRepository) *UpdatePrizeUseCase {
	return &UpdatePrizeUseCase{prizeRepo: prizeRepo}
}

// Execute applies the patch with per-field re-validation.
func (uc *UpdatePrizeUseCase) Execute(ctx context.Context, input UpdatePrizeInput) (*UpdatePrizeOutput, error) {
	prize, err := uc.prizeRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPrizeNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodePrizeNotFound,
				"prize not found",
				domainerror.ErrPrizeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find prize: %w", err)
	}

	patch := input.Patch
	description := prize.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	value := prize.Value
	if patch.Value != nil {
		value = *patch.Value
	}
	if err := validatePrizeFields(description, value); err != nil {
		return nil, err
	}

	prize.Description = description
	prize.Value = value
	if patch.UpdatedBy != nil {
		prize.UpdatedBy = *patch.UpdatedBy
	}
	prize.UpdatedAt = time.Now().UTC()

	if err := uc.prizeRepo.Update(ctx, prize); err != nil {
		return nil, fmt.Errorf("failed to update prize: %w", err)
	}
	return &UpdatePrizeOutput{Prize: prize}, nil
}
