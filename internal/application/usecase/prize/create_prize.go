// Package prize contains prize ("premio") use cases.
package prize

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

const (
	// MinDescriptionLength and MaxDescriptionLength bound the prize description.
	MinDescriptionLength = 2
	MaxDescriptionLength = 255
)

// CreatePrizeInput represents the input for prize creation.
type CreatePrizeInput struct {
	GameID      uuid.UUID
	Description string
	Value       decimal.Decimal
	CreatedBy   string
}

// CreatePrizeOutput represents the output of prize creation.
type CreatePrizeOutput struct {
	Prize *entity.Prize
}

// CreatePrizeUseCase handles prize creation logic.
type CreatePrizeUseCase struct {
	prizeRepo adapter.PrizeRepository
	gameRepo  adapter.GameRepository
}

// NewCreatePrizeUseCase creates a new CreatePrizeUseCase instance.
func NewCreatePrizeUseCase(
	prizeRepo adapter.PrizeRepository,
	gameRepo adapter.GameRepository,
) *CreatePrizeUseCase {
	return &CreatePrizeUseCase{
		prizeRepo: prizeRepo,
		gameRepo:  gameRepo,
	}
}

// Execute performs the prize creation. The referenced game must exist.
func (uc *CreatePrizeUseCase) Execute(ctx context.Context, input CreatePrizeInput) (*CreatePrizeOutput, error) {
	if err := validatePrizeFields(input.Description, input.Value); err != nil {
		return nil, err
	}

	if _, err := uc.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, domainerror.ErrGameNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidPrizeFields,
				"referenced game does not exist",
				domainerror.ErrGameNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check game: %w", err)
	}

	prize := entity.NewPrize(input.GameID, input.Description, input.Value, input.CreatedBy)
	if err := uc.prizeRepo.Create(ctx, prize); err != nil {
		return nil, fmt.Errorf("failed to create prize: %w", err)
	}
	return &CreatePrizeOutput{Prize: prize}, nil
}

func validatePrizeFields(description string, value decimal.Decimal) error {
	description = strings.TrimSpace(description)
	if len(description) < MinDescriptionLength || len(description) > MaxDescriptionLength {
		return domainerror.NewEntityError(
			domainerror.ErrCodeInvalidPrizeFields,
			"prize description must be 2-255 characters",
			domainerror.ErrInvalidPrizeDesc,
		)
	}
	if value.IsNegative() {
		return domainerror.NewEntityError(
			domainerror.ErrCodeInvalidPrizeFields,
			"prize value must not be negative",
			domainerror.ErrNegativePrizeValue,
		)
	}
	return nil
}
