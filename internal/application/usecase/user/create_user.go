package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Name           string
	Username       string
	Email          string
	Phone          string
	Password       string
	Age            string
	InitialBalance int64
	IsAdmin        bool
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation logic. It is the single creation
// path: both /auth/registro and POST /usuarios go through it.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user creation. Validation order is fixed: name,
// username format, username uniqueness, email format, email uniqueness,
// password presence, password strength, phone, age. The first failure aborts
// before any write.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	username := normalizeIdentifier(input.Username)
	if err := validateUsernameFormat(username); err != nil {
		return nil, err
	}
	taken, err := uc.userRepo.ExistsByUsername(ctx, username, nil)
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

	email := normalizeIdentifier(input.Email)
	if err := validateEmailFormat(email); err != nil {
		return nil, err
	}
	taken, err = uc.userRepo.ExistsByEmail(ctx, email, nil)
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

	if input.Password == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingPassword,
			"password is required",
			domainerror.ErrMissingPassword,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	if err := validatePhoneFormat(input.Phone); err != nil {
		return nil, err
	}
	if err := validateAge(input.Age); err != nil {
		return nil, err
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(
		input.Name,
		username,
		email,
		input.Phone,
		hash,
		input.Age,
		input.InitialBalance,
		input.IsAdmin,
	)

	// The unique indexes are the authoritative guard; a racing insert still
	// surfaces as a uniqueness error here.
	if err := uc.userRepo.Create(ctx, user); err != nil {
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
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{User: user}, nil
}
