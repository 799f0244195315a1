package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

func activeUser(username, email, password string) *entity.User {
	u := entity.NewUser("Maria Lopez", username, email, "", "hashed:"+password, "30", 100, false)
	return u
}

func loginSetup(users ...*entity.User) *LoginUserUseCase {
	repo := &fakeUserRepo{users: users}
	return NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
}

func assertAuthCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("login with username succeeds", func(t *testing.T) {
		uc := loginSetup(activeUser("maria", "maria@example.com", "Segura123!"))

		out, err := uc.Execute(ctx, LoginUserInput{Identifier: "maria", Password: "Segura123!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken != "token-maria" {
			t.Errorf("expected issued token, got %q", out.AccessToken)
		}
		if out.User.Username != "maria" {
			t.Errorf("expected user in output, got %+v", out.User)
		}
	})

	t.Run("login with email succeeds", func(t *testing.T) {
		uc := loginSetup(activeUser("maria", "maria@example.com", "Segura123!"))

		out, err := uc.Execute(ctx, LoginUserInput{Identifier: "maria@example.com", Password: "Segura123!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Email != "maria@example.com" {
			t.Errorf("expected email lookup to resolve, got %+v", out.User)
		}
	})

	t.Run("identifier is normalized before lookup", func(t *testing.T) {
		uc := loginSetup(activeUser("maria", "maria@example.com", "Segura123!"))

		if _, err := uc.Execute(ctx, LoginUserInput{Identifier: "  MARIA  ", Password: "Segura123!"}); err != nil {
			t.Errorf("expected trimmed upper-case identifier to log in, got %v", err)
		}
	})

	t.Run("missing identifier", func(t *testing.T) {
		uc := loginSetup()

		_, err := uc.Execute(ctx, LoginUserInput{Identifier: "   ", Password: "Segura123!"})
		assertAuthCode(t, err, domainerror.ErrCodeMissingCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		uc := loginSetup()

		_, err := uc.Execute(ctx, LoginUserInput{Identifier: "maria", Password: ""})
		assertAuthCode(t, err, domainerror.ErrCodeMissingCredentials)
	})

	t.Run("short password rejected before lookup", func(t *testing.T) {
		uc := loginSetup(activeUser("maria", "maria@example.com", "corta"))

		_, err := uc.Execute(ctx, LoginUserInput{Identifier: "maria", Password: "corta"})
		assertAuthCode(t, err, domainerror.ErrCodePasswordTooShort)
	})

	t.Run("malformed email-looking identifier", func(t *testing.T) {
		uc := loginSetup()

		for _, identifier := range []string{"@nouser", "user@", "user@nodot", "a@b@c.com"} {
			_, err := uc.Execute(ctx, LoginUserInput{Identifier: identifier, Password: "Segura123!"})
			assertAuthCode(t, err, domainerror.ErrCodeMalformedEmail)
		}
	})

	t.Run("failure paths share one error", func(t *testing.T) {
		inactive := activeUser("inactiva", "inactiva@example.com", "Segura123!")
		inactive.Active = false
		uc := loginSetup(activeUser("maria", "maria@example.com", "Segura123!"), inactive)

		cases := []struct {
			name       string
			identifier string
			password   string
		}{
			{"unknown identifier", "nadie", "Segura123!"},
			{"wrong password", "maria", "Incorrecta1!"},
			{"inactive account", "inactiva", "Segura123!"},
		}

		var messages []string
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, LoginUserInput{Identifier: tc.identifier, Password: tc.password})
				assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)

				var authErr *domainerror.AuthError
				errors.As(err, &authErr)
				messages = append(messages, authErr.Message)
			})
		}

		for _, msg := range messages {
			if msg != invalidCredentialsMessage {
				t.Errorf("expected uniform message %q, got %q", invalidCredentialsMessage, msg)
			}
		}
	})
}
