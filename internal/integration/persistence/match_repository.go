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

// matchRepository implements the adapter.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository instance.
func NewMatchRepository(db *gorm.DB) adapter.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create creates a new match in the database.
func (r *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	matchModel := model.MatchFromEntity(match)
	result := r.db.WithContext(ctx).Create(matchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a match by its ID.
func (r *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchModel model.MatchModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&matchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMatchNotFound
		}
		return nil, result.Error
	}
	return matchModel.ToEntity(), nil
}

// List retrieves matches with offset/limit pagination, newest first.
func (r *matchRepository) List(ctx context.Context, offset, limit int) ([]*entity.Match, error) {
	var models []model.MatchModel
	result := r.db.WithContext(ctx).
		Order("fecha DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	matches := make([]*entity.Match, len(models))
	for i := range models {
		matches[i] = models[i].ToEntity()
	}
	return matches, nil
}

// ListByUser retrieves all matches played by the given user, newest first.
func (r *matchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error) {
	var models []model.MatchModel
	result := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("fecha DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	matches := make([]*entity.Match, len(models))
	for i := range models {
		matches[i] = models[i].ToEntity()
	}
	return matches, nil
}

// Update persists all fields of an existing match.
func (r *matchRepository) Update(ctx context.Context, match *entity.Match) error {
	matchModel := model.MatchFromEntity(match)
	result := r.db.WithContext(ctx).Save(matchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a match from the database.
func (r *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MatchModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
