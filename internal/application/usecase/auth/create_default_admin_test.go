package auth

import (
	"context"
	"testing"

	"github.com/betting-platform/backend/internal/application/usecase/user"
)

func adminSetup() (*CreateDefaultAdminUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	passwordService := &fakePasswordService{}
	createUser := user.NewCreateUserUseCase(repo, passwordService)
	return NewCreateDefaultAdminUseCase(repo, passwordService, createUser), repo
}

func TestCreateDefaultAdminUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the default admin when absent", func(t *testing.T) {
		uc, repo := adminSetup()

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Created {
			t.Error("expected Created to be true")
		}
		if out.GeneratedPassword == "" {
			t.Error("expected the generated password to be returned once")
		}
		if len(out.GeneratedPassword) != GeneratedPasswordLength {
			t.Errorf("expected %d-char password, got %d", GeneratedPasswordLength, len(out.GeneratedPassword))
		}

		if out.User.Name != DefaultAdminName {
			t.Errorf("expected name %q, got %q", DefaultAdminName, out.User.Name)
		}
		if out.User.Username != DefaultAdminUsername {
			t.Errorf("expected username %q, got %q", DefaultAdminUsername, out.User.Username)
		}
		if out.User.Email != DefaultAdminEmail {
			t.Errorf("expected email %q, got %q", DefaultAdminEmail, out.User.Email)
		}
		if !out.User.IsAdmin {
			t.Error("expected an admin account")
		}
		if out.User.InitialBalance != 0 {
			t.Errorf("expected zero initial balance, got %d", out.User.InitialBalance)
		}

		stored, err := repo.FindDefaultAdmin(ctx)
		if err != nil {
			t.Fatalf("expected persisted admin: %v", err)
		}
		if stored.PasswordHash == out.GeneratedPassword {
			t.Error("expected stored hash, not the plaintext password")
		}
	})

	t.Run("second call is idempotent", func(t *testing.T) {
		uc, repo := adminSetup()

		first, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if second.Created {
			t.Error("expected Created to be false on the second call")
		}
		if second.GeneratedPassword != "" {
			t.Error("expected no password on the second call")
		}
		if second.User.ID != first.User.ID {
			t.Error("expected the existing admin to be returned")
		}
		if len(repo.users) != 1 {
			t.Errorf("expected exactly one admin account, got %d", len(repo.users))
		}
	})
}
