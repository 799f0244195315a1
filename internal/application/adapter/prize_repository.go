package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// PrizeRepository defines the interface for prize persistence operations.
type PrizeRepository interface {
	// Create creates a new prize in the database.
	Create(ctx context.Context, prize *entity.Prize) error

	// FindByID retrieves a prize by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prize, error)

	// List retrieves prizes with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Prize, error)

	// ListByGame retrieves all prizes attached to the given game.
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]*entity.Prize, error)

	// Update persists all fields of an existing prize.
	Update(ctx context.Context, prize *entity.Prize) error

	// Delete removes a prize from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
