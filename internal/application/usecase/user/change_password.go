package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	ID              uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase handles password rotation for an existing account.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute verifies the current password, validates the new one and re-hashes.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !uc.passwordService.VerifyPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerror.NewUserError(
			domainerror.ErrCodeWrongCurrentPassword,
			"current password is incorrect",
			domainerror.ErrWrongCurrentPassword,
		)
	}

	if input.NewPassword == "" {
		return domainerror.NewUserError(
			domainerror.ErrCodeMissingPassword,
			"password is required",
			domainerror.ErrMissingPassword,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
