package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// PrizeModel represents the premios table in the database.
type PrizeModel struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	GameID      uuid.UUID       `gorm:"column:juego_id;type:uuid;index;not null"`
	Description string          `gorm:"column:descripcion;type:varchar(255);not null"`
	Value       decimal.Decimal `gorm:"column:valor;type:decimal(15,2);not null"`
	CreatedBy   string          `gorm:"column:creado_por;type:varchar(100)"`
	UpdatedBy   string          `gorm:"column:actualizado_por;type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"column:fecha_creacion;not null"`
	UpdatedAt   time.Time       `gorm:"column:fecha_actualizacion;not null"`
}

// TableName returns the table name for the PrizeModel.
func (PrizeModel) TableName() string {
	return "premios"
}

// ToEntity converts a PrizeModel to a domain Prize entity.
func (m *PrizeModel) ToEntity() *entity.Prize {
	return &entity.Prize{
		ID:          m.ID,
		GameID:      m.GameID,
		Description: m.Description,
		Value:       m.Value,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PrizeFromEntity creates a PrizeModel from a domain Prize entity.
func PrizeFromEntity(prize *entity.Prize) *PrizeModel {
	return &PrizeModel{
		ID:          prize.ID,
		GameID:      prize.GameID,
		Description: prize.Description,
		Value:       prize.Value,
		CreatedBy:   prize.CreatedBy,
		UpdatedBy:   prize.UpdatedBy,
		CreatedAt:   prize.CreatedAt,
		UpdatedAt:   prize.UpdatedAt,
	}
}
