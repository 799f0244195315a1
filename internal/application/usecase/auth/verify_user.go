package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// VerifyUserInput represents the input for an account existence check.
type VerifyUserInput struct {
	ID uuid.UUID
}

// VerifyUserOutput represents the output of an account existence check.
type VerifyUserOutput struct {
	User *entity.User
}

// VerifyUserUseCase resolves an account by id for the verification endpoint.
type VerifyUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewVerifyUserUseCase creates a new VerifyUserUseCase instance.
func NewVerifyUserUseCase(userRepo adapter.UserRepository) *VerifyUserUseCase {
	return &VerifyUserUseCase{userRepo: userRepo}
}

// Execute looks the account up.
func (uc *VerifyUserUseCase) Execute(ctx context.Context, input VerifyUserInput) (*VerifyUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.ID)
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
	return &VerifyUserOutput{User: user}, nil
}
