package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// MatchRepository defines the interface for match persistence operations.
type MatchRepository interface {
	// Create creates a new match in the database.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a match by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// List retrieves matches with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Match, error)

	// ListByUser retrieves all matches played by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error)

	// Update persists all fields of an existing match.
	Update(ctx context.Context, match *entity.Match) error

	// Delete removes a match from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
