package prize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeletePrizeInput represents the input for a prize deletion.
type DeletePrizeInput struct {
	ID uuid.UUID
}

// DeletePrizeUseCase removes a prize.
type DeletePrizeUseCase struct {
	prizeRepo adapter.PrizeRepository
}

// NewDeletePrizeUseCase creates a new DeletePrizeUseCase instance.
func NewDeletePrizeUseCase(prizeRepo adapter.PrizeRepository) *DeletePrizeUseCase {
	return &DeletePrizeUseCase{prizeRepo: prizeRepo}
}

// Execute performs the deletion.
func (uc *DeletePrizeUseCase) Execute(ctx context.Context, input DeletePrizeInput) error {
	if _, err := uc.prizeRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrPrizeNotFound) {
			return domainerror.NewEntityError(
				domainerror.ErrCodePrizeNotFound,
				"prize not found",
				domainerror.ErrPrizeNotFound,
			)
		}
		return fmt.Errorf("failed to find prize: %w", err)
	}
	if err := uc.prizeRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}
	return nil
}
