package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// MatchModel represents the partidas table in the database.
type MatchModel struct {
	ID      uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID  uuid.UUID       `gorm:"column:usuario_id;type:uuid;index;not null"`
	GameID  uuid.UUID       `gorm:"column:juego_id;type:uuid;index;not null"`
	BetCost decimal.Decimal `gorm:"column:costo_apuesta;type:decimal(15,2);not null"`
	PrizeID *uuid.UUID      `gorm:"column:premio_id;type:uuid"`
	Date    time.Time       `gorm:"column:fecha;not null"`
	State   string          `gorm:"column:estado;type:varchar(20);not null"`
}

// TableName returns the table name for the MatchModel.
func (MatchModel) TableName() string {
	return "partidas"
}

// ToEntity converts a MatchModel to a domain Match entity.
func (m *MatchModel) ToEntity() *entity.Match {
	return &entity.Match{
		ID:      m.ID,
		UserID:  m.UserID,
		GameID:  m.GameID,
		BetCost: m.BetCost,
		PrizeID: m.PrizeID,
		Date:    m.Date,
		State:   entity.MatchState(m.State),
	}
}

// MatchFromEntity creates a MatchModel from a domain Match entity.
func MatchFromEntity(match *entity.Match) *MatchModel {
	return &MatchModel{
		ID:      match.ID,
		UserID:  match.UserID,
		GameID:  match.GameID,
		BetCost: match.BetCost,
		PrizeID: match.PrizeID,
		Date:    match.Date,
		State:   string(match.State),
	}
}
