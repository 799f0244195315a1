package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/application/usecase/user"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// Fixed identity of the default administrator account.
const (
	DefaultAdminName     = "Administrador del Sistema"
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@system.com"
	DefaultAdminAge      = "99"

	// GeneratedPasswordLength is the length of the bootstrap password.
	GeneratedPasswordLength = 12
)

// CreateDefaultAdminOutput represents the output of the admin bootstrap.
// GeneratedPassword is set only when the account was created in this call;
// it is shown once and never stored in plaintext.
type CreateDefaultAdminOutput struct {
	User              *entity.User
	Created           bool
	GeneratedPassword string
}

// CreateDefaultAdminUseCase creates the default administrator account if it
// does not exist yet. The operation is idempotent.
type CreateDefaultAdminUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	createUser      *user.CreateUserUseCase
}

// NewCreateDefaultAdminUseCase creates a new CreateDefaultAdminUseCase instance.
func NewCreateDefaultAdminUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	createUser *user.CreateUserUseCase,
) *CreateDefaultAdminUseCase {
	return &CreateDefaultAdminUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		createUser:      createUser,
	}
}

// Execute returns the existing default admin, or creates it with a freshly
// generated strong password.
func (uc *CreateDefaultAdminUseCase) Execute(ctx context.Context) (*CreateDefaultAdminOutput, error) {
	existing, err := uc.userRepo.FindDefaultAdmin(ctx)
	if err == nil {
		return &CreateDefaultAdminOutput{User: existing, Created: false}, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up default admin: %w", err)
	}

	password, err := uc.passwordService.GenerateSecurePassword(GeneratedPasswordLength)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAdminBootstrap,
			"failed to generate admin password",
			err,
		)
	}

	out, err := uc.createUser.Execute(ctx, user.CreateUserInput{
		Name:           DefaultAdminName,
		Username:       DefaultAdminUsername,
		Email:          DefaultAdminEmail,
		Password:       password,
		Age:            DefaultAdminAge,
		InitialBalance: 0,
		IsAdmin:        true,
	})
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAdminBootstrap,
			"failed to create default admin",
			err,
		)
	}

	return &CreateDefaultAdminOutput{
		User:              out.User,
		Created:           true,
		GeneratedPassword: password,
	}, nil
}
