package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/persistence/model"
)

// balanceMovementRepository implements the adapter.BalanceMovementRepository
// interface.
type balanceMovementRepository struct {
	db *gorm.DB
}

// NewBalanceMovementRepository creates a new balance movement repository instance.
func NewBalanceMovementRepository(db *gorm.DB) adapter.BalanceMovementRepository {
	return &balanceMovementRepository{
		db: db,
	}
}

// Create creates a new balance movement in the database.
func (r *balanceMovementRepository) Create(ctx context.Context, movement *entity.BalanceMovement) error {
	movementModel := model.BalanceMovementFromEntity(movement)
	result := r.db.WithContext(ctx).Create(movementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a balance movement by its ID.
func (r *balanceMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BalanceMovement, error) {
	var movementModel model.BalanceMovementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&movementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return movementModel.ToEntity(), nil
}

// List retrieves balance movements with offset/limit pagination, newest first.
func (r *balanceMovementRepository) List(ctx context.Context, offset, limit int) ([]*entity.BalanceMovement, error) {
	var models []model.BalanceMovementModel
	result := r.db.WithContext(ctx).
		Order("fecha DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.BalanceMovement, len(models))
	for i := range models {
		movements[i] = models[i].ToEntity()
	}
	return movements, nil
}

// ListByUser retrieves all balance movements of the given user, newest first.
func (r *balanceMovementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceMovement, error) {
	var models []model.BalanceMovementModel
	result := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("fecha DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.BalanceMovement, len(models))
	for i := range models {
		movements[i] = models[i].ToEntity()
	}
	return movements, nil
}

// Update persists all fields of an existing balance movement.
func (r *balanceMovementRepository) Update(ctx context.Context, movement *entity.BalanceMovement) error {
	movementModel := model.BalanceMovementFromEntity(movement)
	result := r.db.WithContext(ctx).Save(movementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a balance movement from the database.
func (r *balanceMovementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BalanceMovementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
