package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeleteGameInput represents the input for a game deletion.
type DeleteGameInput struct {
	ID uuid.UUID
}

// DeleteGameUseCase removes a game.
type DeleteGameUseCase struct {
	gameRepo adapter.GameRepository
}

// NewDeleteGameUseCase creates a new DeleteGameUseCase instance.
func NewDeleteGameUseCase(gameRepo adapter.GameRepository) *DeleteGameUseCase {
	return &DeleteGameUseCase{gameRepo: gameRepo}
}

// Execute performs the deletion.
func (uc *DeleteGameUseCase) Execute(ctx context.Context, input DeleteGameInput) error {
	if _, err := uc.gameRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrGameNotFound) {
			return domainerror.NewEntityError(
				domainerror.ErrCodeGameNotFound,
				"game not found",
				domainerror.ErrGameNotFound,
			)
		}
		return fmt.Errorf("failed to find game: %w", err)
	}
	if err := uc.gameRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
