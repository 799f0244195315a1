package user

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

func createSetup() (*CreateUserUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewCreateUserUseCase(repo, &fakePasswordService{}), repo
}

func validInput() CreateUserInput {
	return CreateUserInput{
		Name:           "Maria Lopez",
		Username:       "maria",
		Email:          "maria@example.com",
		Phone:          "+34 600 123 456",
		Password:       "Segura123!",
		Age:            "30",
		InitialBalance: 500,
	}
}

func assertUserCode(t *testing.T, err error, code domainerror.UserErrorCode) {
	t.Helper()
	var userErr *domainerror.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected UserError, got %v", err)
	}
	if userErr.Code != code {
		t.Errorf("expected code %s, got %s", code, userErr.Code)
	}
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with defaults", func(t *testing.T) {
		uc, repo := createSetup()

		out, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.User.Active {
			t.Error("expected new account to be active")
		}
		if out.User.IsAdmin {
			t.Error("expected regular account by default")
		}
		if out.User.PasswordHash == "Segura123!" {
			t.Error("expected the password to be hashed")
		}
		if len(repo.users) != 1 {
			t.Errorf("expected one persisted user, got %d", len(repo.users))
		}
	})

	t.Run("username and email are normalized", func(t *testing.T) {
		uc, _ := createSetup()

		input := validInput()
		input.Username = "  MaRia  "
		input.Email = "  Maria@Example.COM "

		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Username != "maria" {
			t.Errorf("expected normalized username, got %q", out.User.Username)
		}
		if out.User.Email != "maria@example.com" {
			t.Errorf("expected normalized email, got %q", out.User.Email)
		}
	})

	t.Run("validation failures carry the expected codes", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateUserInput)
			code   domainerror.UserErrorCode
		}{
			{"missing name", func(i *CreateUserInput) { i.Name = "   " }, domainerror.ErrCodeMissingName},
			{"username too short", func(i *CreateUserInput) { i.Username = "ab" }, domainerror.ErrCodeInvalidUsername},
			{"username with symbols", func(i *CreateUserInput) { i.Username = "maria!" }, domainerror.ErrCodeInvalidUsername},
			{"invalid email", func(i *CreateUserInput) { i.Email = "no-es-email" }, domainerror.ErrCodeInvalidEmail},
			{"missing password", func(i *CreateUserInput) { i.Password = "" }, domainerror.ErrCodeMissingPassword},
			{"weak password", func(i *CreateUserInput) { i.Password = "corta" }, domainerror.ErrCodeWeakPassword},
			{"invalid phone", func(i *CreateUserInput) { i.Phone = "telefono" }, domainerror.ErrCodeInvalidPhone},
			{"invalid age", func(i *CreateUserInput) { i.Age = "treinta" }, domainerror.ErrCodeInvalidAge},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, repo := createSetup()
				input := validInput()
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				assertUserCode(t, err, tt.code)
				if len(repo.users) != 0 {
					t.Error("expected no write on validation failure")
				}
			})
		}
	})

	t.Run("name is validated before username", func(t *testing.T) {
		uc, _ := createSetup()

		input := validInput()
		input.Name = ""
		input.Username = "x"

		_, err := uc.Execute(ctx, input)
		assertUserCode(t, err, domainerror.ErrCodeMissingName)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		uc, _ := createSetup()

		if _, err := uc.Execute(ctx, validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := validInput()
		input.Email = "otra@example.com"
		_, err := uc.Execute(ctx, input)
		assertUserCode(t, err, domainerror.ErrCodeUsernameExists)
	})

	t.Run("duplicate email rejected case-insensitively", func(t *testing.T) {
		uc, _ := createSetup()

		first := validInput()
		first.Email = "Maria@Example.com"
		if _, err := uc.Execute(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := validInput()
		second.Username = "maria2"
		second.Email = "maria@example.com"
		_, err := uc.Execute(ctx, second)
		assertUserCode(t, err, domainerror.ErrCodeEmailExists)
	})
}
