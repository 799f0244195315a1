package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// GameModel represents the juegos table in the database.
type GameModel struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name        string          `gorm:"column:nombre;type:varchar(100);not null"`
	Description string          `gorm:"column:descripcion;type:varchar(255)"`
	BaseCost    decimal.Decimal `gorm:"column:costo_base;type:decimal(15,2);not null"`
	CreatedBy   string          `gorm:"column:creado_por;type:varchar(100);not null"`
	UpdatedBy   string          `gorm:"column:actualizado_por;type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"column:fecha_creacion;not null"`
	UpdatedAt   time.Time       `gorm:"column:fecha_actualizacion;not null"`
}

// TableName returns the table name for the GameModel.
func (GameModel) TableName() string {
	return "juegos"
}

// ToEntity converts a GameModel to a domain Game entity.
func (m *GameModel) ToEntity() *entity.Game {
	return &entity.Game{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		BaseCost:    m.BaseCost,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GameFromEntity creates a GameModel from a domain Game entity.
func GameFromEntity(game *entity.Game) *GameModel {
	return &GameModel{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		BaseCost:    game.BaseCost,
		CreatedBy:   game.CreatedBy,
		UpdatedBy:   game.UpdatedBy,
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}
}
