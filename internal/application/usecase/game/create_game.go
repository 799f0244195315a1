// Package game contains game catalog use cases.
package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

const (
	// MinGameNameLength and MaxGameNameLength bound the game name.
	MinGameNameLength = 2
	MaxGameNameLength = 100
	// MaxDescriptionLength bounds the optional description.
	MaxDescriptionLength = 255
)

// CreateGameInput represents the input for game creation.
type CreateGameInput struct {
	Name        string
	Description string
	BaseCost    decimal.Decimal
	CreatedBy   string
}

// CreateGameOutput represents the output of game creation.
type CreateGameOutput struct {
	Game *entity.Game
}

// CreateGameUseCase handles game creation logic.
type CreateGameUseCase struct {
	gameRepo adapter.GameRepository
}

// NewCreateGameUseCase creates a new CreateGameUseCase instance.
func NewCreateGameUseCase(gameRepo adapter.GameRepository) *CreateGameUseCase {
	return &CreateGameUseCase{gameRepo: gameRepo}
}

// Execute performs the game creation.
func (uc *CreateGameUseCase) Execute(ctx context.Context, input CreateGameInput) (*CreateGameOutput, error) {
	if err := validateGameFields(input.Name, input.Description, input.BaseCost); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CreatedBy) == "" {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidGameFields,
			"creado_por is required",
			domainerror.ErrMissingCreatedBy,
		)
	}

	game := entity.NewGame(input.Name, input.Description, input.BaseCost, input.CreatedBy)
	if err := uc.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &CreateGameOutput{Game: game}, nil
}

func validateGameFields(name, description string, baseCost decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if len(name) < MinGameNameLength || len(name) > MaxGameNameLength {
		return domainerror.NewEntityError(
			domainerror.ErrCodeInvalidGameFields,
			"game name must be 2-100 characters",
			domainerror.ErrInvalidGameName,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewEntityError(
			domainerror.ErrCodeInvalidGameFields,
			"description must not exceed 255 characters",
			domainerror.ErrInvalidGameName,
		)
	}
	if baseCost.IsNegative() {
		return domainerror.NewEntityError(
			domainerror.ErrCodeInvalidGameFields,
			"base cost must not be negative",
			domainerror.ErrNegativeBaseCost,
		)
	}
	return nil
}
