// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// MinLoginPasswordLength is the minimum password length accepted at login.
// Anything shorter is rejected before touching the database.
const MinLoginPasswordLength = 8

// invalidCredentialsMessage is the single message used for every
// authentication failure. Unknown identifier, wrong password and inactive
// account must be indistinguishable to the caller.
const invalidCredentialsMessage = "credenciales invalidas o cuenta inactiva"

// LoginUserInput represents the input for user login. Identifier is a
// username or an email address.
type LoginUserInput struct {
	Identifier string
	Password   string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login. The identifier is resolved first as a
// username, then as an email. All failure paths converge on the same coded
// error to prevent account enumeration.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	if identifier == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingCredentials,
			"identificador y contrasena son requeridos",
			domainerror.ErrInvalidCredentials,
		)
	}
	if len(input.Password) < MinLoginPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordTooShort,
			"la contrasena debe tener al menos 8 caracteres",
			domainerror.ErrInvalidCredentials,
		)
	}
	if strings.Contains(identifier, "@") && !looksLikeEmail(identifier) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMalformedEmail,
			"formato de email invalido",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.userRepo.FindByUsername(ctx, identifier)
	if err != nil {
		user, err = uc.userRepo.FindByEmail(ctx, identifier)
	}
	if err != nil {
		return nil, invalidCredentials()
	}

	if !user.Active {
		return nil, invalidCredentials()
	}

	if !uc.passwordService.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		invalidCredentialsMessage,
		domainerror.ErrInvalidCredentials,
	)
}

// looksLikeEmail is a cheap shape check applied to identifiers that contain
// an '@'. Full format validation belongs to registration.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.Contains(domain, "@")
}
