package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetGameInput represents the input for a game lookup.
type GetGameInput struct {
	ID uuid.UUID
}

// GetGameOutput represents the output of a game lookup.
type GetGameOutput struct {
	Game *entity.Game
}

// GetGameUseCase handles game lookup by id.
type GetGameUseCase struct {
	gameRepo adapter.GameRepository
}

// NewGetGameUseCase creates a new GetGameUseCase instance.
func NewGetGameUseCase(gameRepo adapter.GameRepository) *GetGameUseCase {
	return &GetGameUseCase{gameRepo: gameRepo}
}

// Execute performs the lookup.
func (uc *GetGameUseCase) Execute(ctx context.Context, input GetGameInput) (*GetGameOutput, error) {
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
	return &GetGameOutput{Game: game}, nil
}
