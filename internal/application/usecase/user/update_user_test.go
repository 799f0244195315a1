package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

func seededSetup(t *testing.T, inputs ...CreateUserInput) (*UpdateUserUseCase, *fakeUserRepo, []uuid.UUID) {
	t.Helper()
	repo := &fakeUserRepo{}
	passwordService := &fakePasswordService{}
	create := NewCreateUserUseCase(repo, passwordService)

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, input := range inputs {
		out, err := create.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		ids = append(ids, out.User.ID)
	}
	return NewUpdateUserUseCase(repo, passwordService), repo, ids
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the supplied fields", func(t *testing.T) {
		uc, _, ids := seededSetup(t, validInput())

		name := "Maria Fernanda Lopez"
		balance := int64(900)
		out, err := uc.Execute(ctx, UpdateUserInput{
			ID:    ids[0],
			Patch: UpdateUserPatch{Name: &name, InitialBalance: &balance},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.User.Name != name {
			t.Errorf("expected updated name, got %q", out.User.Name)
		}
		if out.User.InitialBalance != 900 {
			t.Errorf("expected updated balance, got %d", out.User.InitialBalance)
		}
		if out.User.Username != "maria" {
			t.Errorf("expected untouched username, got %q", out.User.Username)
		}
		if out.User.Email != "maria@example.com" {
			t.Errorf("expected untouched email, got %q", out.User.Email)
		}
	})

	t.Run("unknown user yields not-found code", func(t *testing.T) {
		uc, _, _ := seededSetup(t)

		name := "Nadie"
		_, err := uc.Execute(ctx, UpdateUserInput{
			ID:    uuid.New(),
			Patch: UpdateUserPatch{Name: &name},
		})
		assertUserCode(t, err, domainerror.ErrCodeUserNotFound)
	})

	t.Run("uniqueness check excludes the user itself", func(t *testing.T) {
		uc, _, ids := seededSetup(t, validInput())

		// Re-submitting the user's own username and email must not trip the
		// uniqueness guard.
		username := "maria"
		email := "maria@example.com"
		_, err := uc.Execute(ctx, UpdateUserInput{
			ID:    ids[0],
			Patch: UpdateUserPatch{Username: &username, Email: &email},
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("username taken by another user", func(t *testing.T) {
		second := validInput()
		second.Username = "carmen"
		second.Email = "carmen@example.com"
		uc, _, ids := seededSetup(t, validInput(), second)

		username := "maria"
		_, err := uc.Execute(ctx, UpdateUserInput{
			ID:    ids[1],
			Patch: UpdateUserPatch{Username: &username},
		})
		assertUserCode(t, err, domainerror.ErrCodeUsernameExists)
	})

	t.Run("password patch re-hashes", func(t *testing.T) {
		uc, repo, ids := seededSetup(t, validInput())

		password := "NuevaClave1!"
		_, err := uc.Execute(ctx, UpdateUserInput{
			ID:    ids[0],
			Patch: UpdateUserPatch{Password: &password},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := repo.FindByID(ctx, ids[0])
		if stored.PasswordHash != "hashed:NuevaClave1!" {
			t.Errorf("expected re-hashed password, got %q", stored.PasswordHash)
		}
	})

	t.Run("weak password patch rejected", func(t *testing.T) {
		uc, _, ids := seededSetup(t, validInput())

		password := "corta"
		_, err := uc.Execute(ctx, UpdateUserInput{
			ID:    ids[0],
			Patch: UpdateUserPatch{Password: &password},
		})
		assertUserCode(t, err, domainerror.ErrCodeWeakPassword)
	})
}

func TestDeactivateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the account inactive", func(t *testing.T) {
		update, repo, ids := seededSetup(t, validInput())
		uc := NewDeactivateUserUseCase(update)

		out, err := uc.Execute(ctx, DeactivateUserInput{ID: ids[0]})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Active {
			t.Error("expected account to be inactive")
		}

		stored, _ := repo.FindByID(ctx, ids[0])
		if stored.Active {
			t.Error("expected persisted account to be inactive")
		}
	})

	t.Run("unknown user yields not-found code", func(t *testing.T) {
		update, _, _ := seededSetup(t)
		uc := NewDeactivateUserUseCase(update)

		_, err := uc.Execute(ctx, DeactivateUserInput{ID: uuid.New()})
		assertUserCode(t, err, domainerror.ErrCodeUserNotFound)
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ChangePasswordUseCase, *fakeUserRepo, uuid.UUID) {
		t.Helper()
		repo := &fakeUserRepo{}
		passwordService := &fakePasswordService{}
		create := NewCreateUserUseCase(repo, passwordService)
		out, err := create.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return NewChangePasswordUseCase(repo, passwordService), repo, out.User.ID
	}

	t.Run("rotates the password", func(t *testing.T) {
		uc, repo, id := setup(t)

		err := uc.Execute(ctx, ChangePasswordInput{
			ID:              id,
			CurrentPassword: "Segura123!",
			NewPassword:     "NuevaClave1!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := repo.FindByID(ctx, id)
		if stored.PasswordHash != "hashed:NuevaClave1!" {
			t.Errorf("expected rotated hash, got %q", stored.PasswordHash)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		uc, repo, id := setup(t)

		err := uc.Execute(ctx, ChangePasswordInput{
			ID:              id,
			CurrentPassword: "Incorrecta1!",
			NewPassword:     "NuevaClave1!",
		})
		assertUserCode(t, err, domainerror.ErrCodeWrongCurrentPassword)

		stored, _ := repo.FindByID(ctx, id)
		if stored.PasswordHash != "hashed:Segura123!" {
			t.Error("expected stored hash to be untouched")
		}
	})

	t.Run("weak new password", func(t *testing.T) {
		uc, _, id := setup(t)

		err := uc.Execute(ctx, ChangePasswordInput{
			ID:              id,
			CurrentPassword: "Segura123!",
			NewPassword:     "corta",
		})
		assertUserCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, _ := setup(t)

		err := uc.Execute(ctx, ChangePasswordInput{
			ID:              uuid.New(),
			CurrentPassword: "Segura123!",
			NewPassword:     "NuevaClave1!",
		})
		assertUserCode(t, err, domainerror.ErrCodeUserNotFound)
	})
}
