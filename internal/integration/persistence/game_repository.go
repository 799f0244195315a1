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

// gameRepository implements the adapter.GameRepository interface.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository instance.
func NewGameRepository(db *gorm.DB) adapter.GameRepository {
	return &gameRepository{
		db: db,
	}
}

// Create creates a new game in the database.
func (r *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameModel := model.GameFromEntity(game)
	result := r.db.WithContext(ctx).Create(gameModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a game by its ID.
func (r *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	var gameModel model.GameModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&gameModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGameNotFound
		}
		return nil, result.Error
	}
	return gameModel.ToEntity(), nil
}

// List retrieves games with offset/limit pagination, oldest first.
func (r *gameRepository) List(ctx context.Context, offset, limit int) ([]*entity.Game, error) {
	var models []model.GameModel
	result := r.db.WithContext(ctx).
		Order("fecha_creacion ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	games := make([]*entity.Game, len(models))
	for i := range models {
		games[i] = models[i].ToEntity()
	}
	return games, nil
}

// Update persists all fields of an existing game.
func (r *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	gameModel := model.GameFromEntity(game)
	result := r.db.WithContext(ctx).Save(gameModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a game from the database.
func (r *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GameModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
