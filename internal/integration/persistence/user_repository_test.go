package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newStoredUser(username, email string, isAdmin bool) *entity.User {
	return entity.NewUser("Maria Lopez", username, email, "+34600123456", "salt:digest", "30", 100, isAdmin)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newStoredUser("maria", "maria@example.com", false)
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Username != "maria" || found.Email != "maria@example.com" {
			t.Errorf("unexpected user: %+v", found)
		}
		if found.PasswordHash != "salt:digest" {
			t.Errorf("expected stored hash, got %q", found.PasswordHash)
		}
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected id %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "maria@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected id %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("unknown lookups yield ErrUserNotFound", func(t *testing.T) {
		if _, err := repo.FindByUsername(ctx, "nadie"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindByEmail(ctx, "nadie@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_UniqueViolations(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(ctx, newStoredUser("maria", "maria@example.com", false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, newStoredUser("maria", "otra@example.com", false))
		if !errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, newStoredUser("maria2", "maria@example.com", false))
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestUserRepository_FindDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	t.Run("absent admin yields ErrUserNotFound", func(t *testing.T) {
		if _, err := repo.FindDefaultAdmin(ctx); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("matches the fixed email plus admin flag", func(t *testing.T) {
		// Same email without the admin flag must not match.
		impostor := newStoredUser("impostor", "admin@system.com", false)
		if err := repo.Create(ctx, impostor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindDefaultAdmin(ctx); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}

		if err := repo.Delete(ctx, impostor.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		admin := newStoredUser("admin", "admin@system.com", true)
		if err := repo.Create(ctx, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindDefaultAdmin(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != admin.ID {
			t.Errorf("expected admin id %s, got %s", admin.ID, found.ID)
		}
	})
}

func TestUserRepository_ListAndPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	seed := []struct {
		username string
		isAdmin  bool
	}{
		{"ana", true},
		{"bruno", false},
		{"carla", true},
	}
	for i, s := range seed {
		u := newStoredUser(s.username, s.username+"@example.com", s.isAdmin)
		// Spread registration times so the ASC ordering is deterministic.
		u.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("list orders by registration date", func(t *testing.T) {
		users, err := repo.List(ctx, 0, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(users))
		}
		if users[0].Username != "ana" || users[2].Username != "carla" {
			t.Errorf("unexpected order: %s, %s, %s", users[0].Username, users[1].Username, users[2].Username)
		}
	})

	t.Run("offset and limit window", func(t *testing.T) {
		users, err := repo.List(ctx, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 || users[0].Username != "bruno" {
			t.Errorf("expected the second user only, got %+v", users)
		}
	})

	t.Run("list admins", func(t *testing.T) {
		admins, err := repo.ListAdmins(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(admins) != 2 {
			t.Fatalf("expected 2 admins, got %d", len(admins))
		}
		for _, a := range admins {
			if !a.IsAdmin {
				t.Errorf("expected admin, got %+v", a)
			}
		}
	})
}

func TestUserRepository_UpdateAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newStoredUser("maria", "maria@example.com", false)
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := newStoredUser("carmen", "carmen@example.com", false)
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("update persists field changes", func(t *testing.T) {
		user.Name = "Maria Fernanda Lopez"
		user.Active = false
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Maria Fernanda Lopez" || found.Active {
			t.Errorf("expected persisted changes, got %+v", found)
		}
	})

	t.Run("exists by username honors exclusion", func(t *testing.T) {
		taken, err := repo.ExistsByUsername(ctx, "maria", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("expected username to exist")
		}

		taken, err = repo.ExistsByUsername(ctx, "maria", &user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taken {
			t.Error("expected self-exclusion to report not taken")
		}

		taken, err = repo.ExistsByUsername(ctx, "maria", &other.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("expected exclusion of another id to still report taken")
		}
	})

	t.Run("exists by email honors exclusion", func(t *testing.T) {
		taken, err := repo.ExistsByEmail(ctx, "carmen@example.com", &user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("expected email to exist")
		}

		taken, err = repo.ExistsByEmail(ctx, "carmen@example.com", &other.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taken {
			t.Error("expected self-exclusion to report not taken")
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		if err := repo.Delete(ctx, other.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, other.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
