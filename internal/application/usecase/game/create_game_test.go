package game

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// fakeGameRepo is an in-memory adapter.GameRepository for use case tests.
type fakeGameRepo struct {
	games []*entity.Game
}

func (r *fakeGameRepo) Create(_ context.Context, game *entity.Game) error {
	r.games = append(r.games, game)
	return nil
}

func (r *fakeGameRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Game, error) {
	for _, g := range r.games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGameNotFound
}

func (r *fakeGameRepo) List(_ context.Context, offset, limit int) ([]*entity.Game, error) {
	if offset >= len(r.games) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.games) {
		end = len(r.games)
	}
	return r.games[offset:end], nil
}

func (r *fakeGameRepo) Update(_ context.Context, game *entity.Game) error {
	for i, g := range r.games {
		if g.ID == game.ID {
			r.games[i] = game
			return nil
		}
	}
	return domainerror.ErrGameNotFound
}

func (r *fakeGameRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, g := range r.games {
		if g.ID == id {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrGameNotFound
}

func assertEntityCode(t *testing.T, err error, code domainerror.EntityErrorCode) {
	t.Helper()
	var entityErr *domainerror.EntityError
	if !errors.As(err, &entityErr) {
		t.Fatalf("expected EntityError, got %v", err)
	}
	if entityErr.Code != code {
		t.Errorf("expected code %s, got %s", code, entityErr.Code)
	}
}

func TestCreateGameUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a game", func(t *testing.T) {
		repo := &fakeGameRepo{}
		uc := NewCreateGameUseCase(repo)

		out, err := uc.Execute(ctx, CreateGameInput{
			Name:      "Bingo",
			BaseCost:  decimal.RequireFromString("12.50"),
			CreatedBy: "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Game.Name != "Bingo" {
			t.Errorf("expected game name, got %q", out.Game.Name)
		}
		if len(repo.games) != 1 {
			t.Errorf("expected one persisted game, got %d", len(repo.games))
		}
	})

	t.Run("zero base cost is allowed", func(t *testing.T) {
		uc := NewCreateGameUseCase(&fakeGameRepo{})

		_, err := uc.Execute(ctx, CreateGameInput{
			Name:      "Gratis",
			BaseCost:  decimal.Zero,
			CreatedBy: "admin",
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateGameInput
		}{
			{"name too short", CreateGameInput{Name: "B", BaseCost: decimal.Zero, CreatedBy: "admin"}},
			{"negative base cost", CreateGameInput{Name: "Bingo", BaseCost: decimal.RequireFromString("-1"), CreatedBy: "admin"}},
			{"missing created_by", CreateGameInput{Name: "Bingo", BaseCost: decimal.Zero, CreatedBy: "  "}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &fakeGameRepo{}
				uc := NewCreateGameUseCase(repo)

				_, err := uc.Execute(ctx, tt.input)
				assertEntityCode(t, err, domainerror.ErrCodeInvalidGameFields)
				if len(repo.games) != 0 {
					t.Error("expected no write on validation failure")
				}
			})
		}
	})
}
