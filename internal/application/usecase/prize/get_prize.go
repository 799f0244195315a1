package prize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetPrizeInput represents the input for a prize lookup.
type GetPrizeInput struct {
	ID uuid.UUID
}

// GetPrizeOutput represents the output of a prize lookup.
type GetPrizeOutput struct {
	Prize *entity.Prize
}

// GetPrizeUseCase handles prize lookup by id.
type GetPrizeUseCase struct {
	prizeRepo adapter.PrizeRepository
}

// NewGetPrizeUseCase creates a new GetPrizeUseCase instance.
func NewGetPrizeUseCase(prizeRepo adapter.PrizeRepository) *GetPrizeUseCase {
	return &GetPrizeUseCase{prizeRepo: prizeRepo}
}

// Execute performs the lookup.
func (uc *GetPrizeUseCase) Execute(ctx context.Context, input GetPrizeInput) (*GetPrizeOutput, error) {
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
	return &GetPrizeOutput{Prize: prize}, nil
}
