// Package mock provides in-memory test doubles for the integration suite.
package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/betting-platform/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory SQLite database with the full schema
// migrated. Each scenario gets its own database so state never leaks
// between scenarios.
func NewDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.GameModel{},
		&model.MatchModel{},
		&model.TicketModel{},
		&model.PrizeModel{},
		&model.BalanceMovementModel{},
	)
	if err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return db
}
