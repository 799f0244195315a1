package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// DeactivateUserInput represents the input for a user deactivation.
type DeactivateUserInput struct {
	ID uuid.UUID
}

// DeactivateUserOutput represents the output of a user deactivation.
type DeactivateUserOutput struct {
	User *entity.User
}

// DeactivateUserUseCase flags an account as inactive (soft delete). There is
// no reactivation operation.
type DeactivateUserUseCase struct {
	updateUser *UpdateUserUseCase
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(updateUser *UpdateUserUseCase) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{updateUser: updateUser}
}

// Execute marks the user inactive.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, input DeactivateUserInput) (*DeactivateUserOutput, error) {
	inactive := false
	out, err := uc.updateUser.Execute(ctx, UpdateUserInput{
		ID:    input.ID,
		Patch: UpdateUserPatch{Active: &inactive},
	})
	if err != nil {
		return nil, err
	}
	return &DeactivateUserOutput{User: out.User}, nil
}
