package match

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

// ListMatchesInput represents the filters for a match listing. When UserID
// is set the pagination window is ignored and all of the user's matches are
// returned.
type ListMatchesInput struct {
	Skip   int
	Limit  int
	UserID *uuid.UUID
}

// ListMatchesOutput represents the output of a match listing.
type ListMatchesOutput struct {
	Matches []*entity.Match
}

// ListMatchesUseCase handles match listing.
type ListMatchesUseCase struct {
	matchRepo adapter.MatchRepository
}

// NewListMatchesUseCase creates a new ListMatchesUseCase instance.
func NewListMatchesUseCase(matchRepo adapter.MatchRepository) *ListMatchesUseCase {
	return &ListMatchesUseCase{matchRepo: matchRepo}
}

// Execute performs the listing.
func (uc *ListMatchesUseCase) Execute(ctx context.Context, input ListMatchesInput) (*ListMatchesOutput, error) {
	if input.UserID != nil {
		matches, err := uc.matchRepo.ListByUser(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list matches by user: %w", err)
		}
		return &ListMatchesOutput{Matches: matches}, nil
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

	matches, err := uc.matchRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return &ListMatchesOutput{Matches: matches}, nil
}
