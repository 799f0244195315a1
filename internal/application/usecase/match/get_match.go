package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetMatchInput represents the input for a match lookup.
type GetMatchInput struct {
	ID uuid.UUID
}

// GetMatchOutput represents the output of a match lookup.
type GetMatchOutput struct {
	Match *entity.Match
}

// GetMatchUseCase handles match lookup by id.
type GetMatchUseCase struct {
	matchRepo adapter.MatchRepository
}

// NewGetMatchUseCase creates a new GetMatchUseCase instance.
func NewGetMatchUseCase(matchRepo adapter.MatchRepository) *GetMatchUseCase {
	return &GetMatchUseCase{matchRepo: matchRepo}
}

// Execute performs the lookup.
func (uc *GetMatchUseCase) Execute(ctx context.Context, input GetMatchInput) (*GetMatchOutput, error) {
	match, err := uc.matchRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMatchNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeMatchNotFound,
				"match not found",
				domainerror.ErrMatchNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return &GetMatchOutput{Match: match}, nil
}
