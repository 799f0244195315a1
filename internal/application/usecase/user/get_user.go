package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// GetUserInput selects one user by exactly one identifier. When more than one
// is set, ID wins, then email, then username.
type GetUserInput struct {
	ID       *uuid.UUID
	Email    string
	Username string
}

// GetUserOutput represents the output of a user lookup.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase handles user lookup by id, email or username.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute performs the user lookup.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	var (
		user *entity.User
		err  error
	)

	switch {
	case input.ID != nil:
		user, err = uc.userRepo.FindByID(ctx, *input.ID)
	case input.Email != "":
		user, err = uc.userRepo.FindByEmail(ctx, normalizeIdentifier(input.Email))
	case input.Username != "":
		user, err = uc.userRepo.FindByUsername(ctx, normalizeIdentifier(input.Username))
	default:
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetUserOutput{User: user}, nil
}
