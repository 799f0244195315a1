package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// GameRepository defines the interface for game persistence operations.
type GameRepository interface {
	// Create creates a new game in the database.
	Create(ctx context.Context, game *entity.Game) error

	// FindByID retrieves a game by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// List retrieves games with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Game, error)

	// Update persists all fields of an existing game.
	Update(ctx context.Context, game *entity.Game) error

	// Delete removes a game from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
