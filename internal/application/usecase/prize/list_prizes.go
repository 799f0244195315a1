package prize

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is applied when the caller does not bound the listing.
	DefaultPageSize = 100
	// MaxPageSize caps a single listing page.
	MaxPageSize = 1000
)

// ListPrizesInput represents the filters for a prize listing. When GameID is
// set, all prizes of that game are returned and pagination is ignored.
type ListPrizesInput struct {
	Skip   int
	Limit  int
	GameID *uuid.UUID
}

// ListPrizesOutput represents the output of a prize listing.
type ListPrizesOutput struct {
	Prizes []*entity.Prize
}

// ListPrizesUseCase handles prize listing.
type ListPrizesUseCase struct {
	prizeRepo adapter.PrizeRepository
}

// NewListPrizesUseCase creates a new ListPrizesUseCase instance.
func NewListPrizesUseCase(prizeRepo adapter.PrizeRepository) *ListPrizesUseCase {
	return &ListPrizesUseCase{prizeRepo: prizeRepo}
}

// Execute performs the listing.
func (uc *ListPrizesUseCase) Execute(ctx context.Context, input ListPrizesInput) (*ListPrizesOutput, error) {
	if input.GameID != nil {
		prizes, err := uc.prizeRepo.ListByGame(ctx, *input.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to list prizes by game: %w", err)
		}
		return &ListPrizesOutput{Prizes: prizes}, nil
	}

	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	prizes, err := uc.prizeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}
	return &ListPrizesOutput{Prizes: prizes}, nil
}
