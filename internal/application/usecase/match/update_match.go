package match

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

// UpdateMatchPatch carries the optional fields of a match update.
type UpdateMatchPatch struct {
	BetCost *decimal.Decimal
	PrizeID *uuid.UUID
	State   *string
}

// UpdateMatchInput represents the input for a match update.
type UpdateMatchInput struct {
	ID    uuid.UUID
	Patch UpdateMatchPatch
}

// UpdateMatchOutput represents the output of a match update.
type UpdateMatchOutput struct {
	Match *entity.Match
}

// UpdateMatchUseCase handles partial match updates. The user and game
// references of a match are immutable.
type UpdateMatchUseCase struct {
	matchRepo adapter.MatchRepository
	prizeRepo adapter.PrizeRepository
}

// NewUpdateMatchUseCase creates a new UpdateMatchUseCase instance.
func NewUpdateMatchUseCase(
	matchRepo adapter.MatchRepository,
	prizeRepo adapter.PrizeRepository,
) *UpdateMatchUseCase {
	return &UpdateMatchUseCase{
		matchRepo: matchRepo,
		prizeRepo: prizeRepo,
	}
}

// Execute applies the patch with per-field re-validation.
func (uc *UpdateMatchUseCase) Execute(ctx context.Context, input UpdateMatchInput) (*UpdateMatchOutput, error) {
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

	patch := input.Patch

	if patch.State != nil {
		state := entity.MatchState(strings.ToLower(strings.TrimSpace(*patch.State)))
		if !entity.IsValidMatchState(state) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMatchFields,
				"match state must be one of: ganada, perdida, en curso",
				domainerror.ErrInvalidMatchState,
			)
		}
		match.State = state
	}

	if patch.BetCost != nil {
		if patch.BetCost.IsNegative() {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMatchFields,
				"bet cost must not be negative",
				domainerror.ErrNegativeBetCost,
			)
		}
		match.BetCost = *patch.BetCost
	}

	if patch.PrizeID != nil {
		if _, err := uc.prizeRepo.FindByID(ctx, *patch.PrizeID); err != nil {
			if errors.Is(err, domainerror.ErrPrizeNotFound) {
				return nil, domainerror.NewEntityError(
					domainerror.ErrCodeInvalidMatchFields,
					"referenced prize does not exist",
					domainerror.ErrPrizeNotFound,
				)
			}
			return nil, fmt.Errorf("failed to check prize: %w", err)
		}
		match.PrizeID = patch.PrizeID
	}

	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return &UpdateMatchOutput{Match: match}, nil
}
