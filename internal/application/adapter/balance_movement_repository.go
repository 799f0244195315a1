package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// BalanceMovementRepository defines the interface for balance-movement
// persistence operations. Movements form an append-style ledger; Update and
// Delete exist for administrative corrections only.
type BalanceMovementRepository interface {
	// Create creates a new balance movement in the database.
	Create(ctx context.Context, movement *entity.BalanceMovement) error

	// FindByID retrieves a balance movement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BalanceMovement, error)

	// List retrieves balance movements with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.BalanceMovement, error)

	// ListByUser retrieves all balance movements of the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceMovement, error)

	// Update persists all fields of an existing balance movement.
	Update(ctx context.Context, movement *entity.BalanceMovement) error

	// Delete removes a balance movement from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
