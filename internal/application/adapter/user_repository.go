// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// Lookups by username or email expect already-normalized (lower-cased,
// trimmed) values.
type UserRepository interface {
	// Create creates a new user in the database. The unique indexes on
	// username and email are the authoritative uniqueness guard; a violation
	// surfaces as ErrUsernameAlreadyExists / ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindDefaultAdmin retrieves the default administrator account, if any.
	FindDefaultAdmin(ctx context.Context) (*entity.User, error)

	// List retrieves users with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// ListAdmins retrieves all administrator users.
	ListAdmins(ctx context.Context) ([]*entity.User, error)

	// Update persists all fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUsername checks whether a user with the given username exists,
	// optionally excluding one user ID (for update self-exclusion).
	ExistsByUsername(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)

	// ExistsByEmail checks whether a user with the given email exists,
	// optionally excluding one user ID (for update self-exclusion).
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}
