package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// TicketModel represents the boletos table in the database.
type TicketModel struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"column:usuario_id;type:uuid;index;not null"`
	GameID    uuid.UUID       `gorm:"column:juego_id;type:uuid;index;not null"`
	Numbers   string          `gorm:"column:numeros;type:varchar(255);not null"`
	Cost      decimal.Decimal `gorm:"column:costo;type:decimal(15,2);not null"`
	CreatedBy string          `gorm:"column:creado_por;type:varchar(100);not null"`
	UpdatedBy string          `gorm:"column:actualizado_por;type:varchar(100)"`
	CreatedAt time.Time       `gorm:"column:fecha_creacion;not null"`
	UpdatedAt time.Time       `gorm:"column:fecha_actualizacion;not null"`
}

// TableName returns the table name for the TicketModel.
func (TicketModel) TableName() string {
	return "boletos"
}

// ToEntity converts a TicketModel to a domain Ticket entity.
func (m *TicketModel) ToEntity() *entity.Ticket {
	return &entity.Ticket{
		ID:        m.ID,
		UserID:    m.UserID,
		GameID:    m.GameID,
		Numbers:   m.Numbers,
		Cost:      m.Cost,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TicketFromEntity creates a TicketModel from a domain Ticket entity.
func TicketFromEntity(ticket *entity.Ticket) *TicketModel {
	return &TicketModel{
		ID:        ticket.ID,
		UserID:    ticket.UserID,
		GameID:    ticket.GameID,
		Numbers:   ticket.Numbers,
		Cost:      ticket.Cost,
		CreatedBy: ticket.CreatedBy,
		UpdatedBy: ticket.UpdatedBy,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}
