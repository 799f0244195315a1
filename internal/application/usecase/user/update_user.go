package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// UpdateUserPatch carries the optional fields of a user update. A nil field
// leaves the stored value untouched.
type UpdateUserPatch struct {
	Name           *string
	Username       *string
	Email          *string
	Phone          *string
	Password       *string
	Age            *string
	InitialBalance *int64
	Active         *bool
	IsAdmin        *bool
}

// UpdateUserInput represents the input for a user update.
type UpdateUserInput struct {
	ID    uuid.UUID
	Patch UpdateUserPatch
}

// UpdateUserOutput represents the output of a user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles partial user updates.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute applies the patch. Each supplied field is re-validated with the
// same rules as creation; username and email uniqueness checks exclude the
// user being updated.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
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

	patch := input.Patch

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		user.Name = *patch.Name
	}

	if patch.Username != nil {
		username := normalizeIdentifier(*patch.Username)
		if err := validateUsernameFormat(username); err != nil {
			return nil, err
		}
		taken, err := uc.userRepo.ExistsByUsername(ctx, username, &user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check username existence: %w", err)
		}
		if taken {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUsernameExists,
				"username already registered",
				domainerror.ErrUsernameAlreadyExists,
			)
		}
		user.Username = username
	}

	if patch.Email != nil {
		email := normalizeIdentifier(*patch.Email)
		if err := validateEmailFormat(email); err != nil {
			return nil, err
		}
		taken, err := uc.userRepo.ExistsByEmail(ctx, email, &user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if taken {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailExists,
				"email already registered",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		user.Email = email
	}

	if patch.Phone != nil {
		if err := validatePhoneFormat(*patch.Phone); err != nil {
			return nil, err
		}
		user.Phone = *patch.Phone
	}

	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeMissingPassword,
				"password is required",
				domainerror.ErrMissingPassword,
			)
		}
		if err := uc.passwordService.ValidatePasswordStrength(*patch.Password); err != nil {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeWeakPassword,
				err.Error(),
				domainerror.ErrWeakPassword,
			)
		}
		hash, err := uc.passwordService.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if patch.Age != nil {
		if err := validateAge(*patch.Age); err != nil {
			return nil, err
		}
		user.Age = *patch.Age
	}

	if patch.InitialBalance != nil {
		user.InitialBalance = *patch.InitialBalance
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUsernameExists,
				"username already registered",
				domainerror.ErrUsernameAlreadyExists,
			)
		}
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailExists,
				"email already registered",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{User: user}, nil
}
