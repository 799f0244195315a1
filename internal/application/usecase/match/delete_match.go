package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeleteMatchInput represents the input for a match deletion.
type DeleteMatchInput struct {
	ID uuid.UUID
}

// DeleteMatchUseCase removes a match.
type DeleteMatchUseCase struct {
	matchRepo adapter.MatchRepository
}

// NewDeleteMatchUseCase creates a new DeleteMatchUseCase instance.
func NewDeleteMatchUseCase(matchRepo adapter.MatchRepository) *DeleteMatchUseCase {
	return &DeleteMatchUseCase{matchRepo: matchRepo}
}

// Execute performs the deletion.
func (uc *DeleteMatchUseCase) Execute(ctx context.Context, input DeleteMatchInput) error {
	if _, err := uc.matchRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrMatchNotFound) {
			return domainerror.NewEntityError(
				domainerror.ErrCodeMatchNotFound,
				"match not found",
				domainerror.ErrMatchNotFound,
			)
		}
		return fmt.Errorf("failed to find match: %w", err)
	}
	if err := uc.matchRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}
