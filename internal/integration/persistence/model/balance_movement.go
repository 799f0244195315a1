package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// BalanceMovementModel represents the historial_saldo table in the database.
type BalanceMovementModel struct {
	ID     uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID uuid.UUID       `gorm:"column:usuario_id;type:uuid;index;not null"`
	Type   string          `gorm:"column:tipo;type:varchar(10);not null"`
	Amount decimal.Decimal `gorm:"column:monto;type:decimal(15,2);not null"`
	Date   time.Time       `gorm:"column:fecha;not null"`
}

// TableName returns the table name for the BalanceMovementModel.
func (BalanceMovementModel) TableName() string {
	return "historial_saldo"
}

// ToEntity converts a BalanceMovementModel to a domain BalanceMovement entity.
func (m *BalanceMovementModel) ToEntity() *entity.BalanceMovement {
	return &entity.BalanceMovement{
		ID:     m.ID,
		UserID: m.UserID,
		Type:   entity.MovementType(m.Type),
		Amount: m.Amount,
		Date:   m.Date,
	}
}

// BalanceMovementFromEntity creates a BalanceMovementModel from a domain entity.
func BalanceMovementFromEntity(movement *entity.BalanceMovement) *BalanceMovementModel {
	return &BalanceMovementModel{
		ID:     movement.ID,
		UserID: movement.UserID,
		Type:   string(movement.Type),
		Amount: movement.Amount,
		Date:   movement.Date,
	}
}
