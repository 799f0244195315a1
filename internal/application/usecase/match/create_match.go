// Package match contains match ("partida") use cases.
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

// CreateMatchInput represents the input for match creation.
type CreateMatchInput struct {
	UserID  uuid.UUID
	GameID  uuid.UUID
	BetCost decimal.Decimal
	PrizeID *uuid.UUID
	State   string
}

// CreateMatchOutput represents the output of match creation.
type CreateMatchOutput struct {
	Match *entity.Match
}

// CreateMatchUseCase handles match creation logic.
type CreateMatchUseCase struct {
	matchRepo adapter.MatchRepository
	userRepo  adapter.UserRepository
	gameRepo  adapter.GameRepository
	prizeRepo adapter.PrizeRepository
}

// NewCreateMatchUseCase creates a new CreateMatchUseCase instance.
func NewCreateMatchUseCase(
	matchRepo adapter.MatchRepository,
	userRepo adapter.UserRepository,
	gameRepo adapter.GameRepository,
	prizeRepo adapter.PrizeRepository,
) *CreateMatchUseCase {
	return &CreateMatchUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		prizeRepo: prizeRepo,
	}
}

// Execute performs the match creation. The referenced user and game must
// exist; the prize reference, when given, must exist too.
func (uc *CreateMatchUseCase) Execute(ctx context.Context, input CreateMatchInput) (*CreateMatchOutput, error) {
	state := entity.MatchState(strings.ToLower(strings.TrimSpace(input.State)))
	if !entity.IsValidMatchState(state) {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidMatchFields,
			"match state must be one of: ganada, perdida, en curso",
			domainerror.ErrInvalidMatchState,
		)
	}
	if input.BetCost.IsNegative() {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidMatchFields,
			"bet cost must not be negative",
			domainerror.ErrNegativeBetCost,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMatchFields,
				"referenced user does not exist",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if _, err := uc.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, domainerror.ErrGameNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidMatchFields,
				"referenced game does not exist",
				domainerror.ErrGameNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check game: %w", err)
	}
	if input.PrizeID != nil {
		if _, err := uc.prizeRepo.FindByID(ctx, *input.PrizeID); err != nil {
			if errors.Is(err, domainerror.ErrPrizeNotFound) {
				return nil, domainerror.NewEntityError(
					domainerror.ErrCodeInvalidMatchFields,
					"referenced prize does not exist",
					domainerror.ErrPrizeNotFound,
				)
			}
			return nil, fmt.Errorf("failed to check prize: %w", err)
		}
	}

	match := entity.NewMatch(input.UserID, input.GameID, input.BetCost, input.PrizeID, state)
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &CreateMatchOutput{Match: match}, nil
}
