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

// prizeRepository implements the adapter.PrizeRepository interface.
type prizeRepository struct {
	db *gorm.DB
}

// NewPrizeRepository creates a new prize repository instance.
func NewPrizeRepository(db *gorm.DB) adapter.PrizeRepository {
	return &prizeRepository{
		db: db,
	}
}

// Create creates a new prize in the database.
func (r *prizeRepository) Create(ctx context.Context, prize *entity.Prize) error {
	prizeModel := model.PrizeFromEntity(prize)
	result := r.db.WithContext(ctx).Create(prizeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a prize by its ID.
func (r *prizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prize, error) {
	var prizeModel model.PrizeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&prizeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPrizeNotFound
		}
		return nil, result.Error
	}
	return prizeModel.ToEntity(), nil
}

// List retrieves prizes with offset/limit pagination, oldest first.
func (r *prizeRepository) List(ctx context.Context, offset, limit int) ([]*entity.Prize, error) {
	var models []model.PrizeModel
	result := r.db.WithContext(ctx).
		Order("fecha_creacion ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	prizes := make([]*entity.Prize, len(models))
	for i := range models {
		prizes[i] = models[i].ToEntity()
	}
	return prizes, nil
}

// ListByGame retrieves all prizes attached to the given game.
func (r *prizeRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*entity.Prize, error) {
	var models []model.PrizeModel
	result := r.db.WithContext(ctx).
		Where("juego_id = ?", gameID).
		Order("fecha_creacion ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	prizes := make([]*entity.Prize, len(models))
	for i := range models {
		prizes[i] = models[i].ToEntity()
	}
	return prizes, nil
}

// Update persists all fields of an existing prize.
func (r *prizeRepository) Update(ctx context.Context, prize *entity.Prize) error {
	prizeModel := model.PrizeFromEntity(prize)
	result := r.db.WithContext(ctx).Save(prizeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a prize from the database.
func (r *prizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PrizeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
