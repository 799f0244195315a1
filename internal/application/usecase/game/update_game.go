package game

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

// UpdateGamePatch carries the optional fields of a game update.
type UpdateGamePatch struct {
	Name        *string
	Description *string
	BaseCost    *decimal.Decimal
	UpdatedBy   *string
}

// UpdateGameInput represents the input for a game update.
type UpdateGameInput struct {
	ID    uuid.UUID
	Patch UpdateGamePatch
}

// UpdateGameOutput represents the output of a game update.
type UpdateGameOutput struct {
	Game *entity.Game
}

// UpdateGameUseCase handles partial game updates.
type UpdateGameUseCase struct {
	gameRepo adapter.GameRepository
}

// NewUpdateGameUseCase creates a new UpdateGameUseCase instance.
func NewUpdateGameUseCase(gameRepo adapter.GameRepository) *UpdateGameUseCase {
	return &UpdateGameUseCase{gameRepo: gameRepo}
}

// Execute applies the patch with per-field re-validation.
func (uc *UpdateGameUseCase) Execute(ctx context.Context, input UpdateGameInput) (*UpdateGameOutput, error) {
	game, err := uc.gameRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGameNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeGameNotFound,
				"game not found",
				domainerror.ErrGameNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	patch := input.Patch
	name := game.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	description := game.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	baseCost := game.BaseCost
	if patch.BaseCost != nil {
		baseCost = *patch.BaseCost
	}
	if err := validateGameFields(name, description, baseCost); err != nil {
		return nil, err
	}

	game.Name = name
	game.Description = description
	game.BaseCost = baseCost
	if patch.UpdatedBy != nil {
		game.UpdatedBy = *patch.UpdatedBy
	}
	game.UpdatedAt = time.Now().UTC()

	if err := uc.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return &UpdateGameOutput{Game: game}, nil
}
