package user

import (
	"context"
	"fmt"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
)

// ListAdminsOutput represents the output of the administrator listing.
type ListAdminsOutput struct {
	Admins []*entity.User
}

// ListAdminsUseCase lists all administrator accounts.
type ListAdminsUseCase struct {
	userRepo adapter.UserRepository
}

// NewListAdminsUseCase creates a new ListAdminsUseCase instance.
func NewListAdminsUseCase(userRepo adapter.UserRepository) *ListAdminsUseCase {
	return &ListAdminsUseCase{userRepo: userRepo}
}

// Execute retrieves every user flagged as administrator.
func (uc *ListAdminsUseCase) Execute(ctx context.Context) (*ListAdminsOutput, error) {
	admins, err := uc.userRepo.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return &ListAdminsOutput{Admins: admins}, nil
}
