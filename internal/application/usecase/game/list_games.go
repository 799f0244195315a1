package game

import (
	"context"
	"fmt"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is applied when the caller does not bound the listing.
	DefaultPageSize = 100
	// MaxPageSize caps a single listing page.
	MaxPageSize = 1000
)

// ListGamesInput represents the pagination window for a game listing.
type ListGamesInput struct {
	Skip  int
	Limit int
}

// ListGamesOutput represents the output of a game listing.
type ListGamesOutput struct {
	Games []*entity.Game
}

// ListGamesUseCase handles paginated game listing.
type ListGamesUseCase struct {
	gameRepo adapter.GameRepository
}

// NewListGamesUseCase creates a new ListGamesUseCase instance.
func NewListGamesUseCase(gameRepo adapter.GameRepository) *ListGamesUseCase {
	return &ListGamesUseCase{gameRepo: gameRepo}
}

// Execute performs the listing.
func (uc *ListGamesUseCase) Execute(ctx context.Context, input ListGamesInput) (*ListGamesOutput, error) {
	skip, limit := clampPage(input.Skip, input.Limit)
	games, err := uc.gameRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return &ListGamesOutput{Games: games}, nil
}

func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return skip, limit
}
