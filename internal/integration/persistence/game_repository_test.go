package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/persistence/model"
)

func newGameTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.GameModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGameRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(newGameTestDB(t))

	game := entity.NewGame("Bingo", "bingo de 75 bolas", decimal.RequireFromString("12.50"), "admin")

	t.Run("create and find", func(t *testing.T) {
		if err := repo.Create(ctx, game); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, game.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Bingo" {
			t.Errorf("expected name 'Bingo', got %q", found.Name)
		}
		if !found.BaseCost.Equal(decimal.RequireFromString("12.50")) {
			t.Errorf("expected base cost 12.50, got %s", found.BaseCost)
		}
	})

	t.Run("update", func(t *testing.T) {
		game.BaseCost = decimal.RequireFromString("15.00")
		game.UpdatedBy = "admin"
		if err := repo.Update(ctx, game); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, game.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.BaseCost.Equal(decimal.RequireFromString("15.00")) {
			t.Errorf("expected updated cost, got %s", found.BaseCost)
		}
		if found.UpdatedBy != "admin" {
			t.Errorf("expected updated_by, got %q", found.UpdatedBy)
		}
	})

	t.Run("list", func(t *testing.T) {
		second := entity.NewGame("Ruleta", "", decimal.RequireFromString("5.00"), "admin")
		second.CreatedAt = game.CreatedAt.Add(time.Second)
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		games, err := repo.List(ctx, 0, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("expected 2 games, got %d", len(games))
		}
		if games[0].Name != "Bingo" {
			t.Errorf("expected creation-date order, got %q first", games[0].Name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, game.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, game.ID); !errors.Is(err, domainerror.ErrGameNotFound) {
			t.Errorf("expected ErrGameNotFound, got %v", err)
		}
	})
}
