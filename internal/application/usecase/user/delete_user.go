package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// DeleteUserInput represents the input for a user deletion.
type DeleteUserInput struct {
	ID uuid.UUID
}

// DeleteUserUseCase removes an account permanently (hard delete).
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute performs the deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	if _, err := uc.userRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
