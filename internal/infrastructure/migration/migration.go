// Package migration owns schema creation: versioned goose scripts for MySQL
// and gorm AutoMigrate for sqlite.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// Models lists every table the application owns.
func Models() []any {
	return []any{
		&models.UserModel{},
		&models.SpaceModel{},
		&models.ReservationModel{},
		&models.ReservationHistoryModel{},
		&models.SettingModel{},
		&models.NotificationModel{},
	}
}

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for the database driver.
func NewManager(driver string, log logger.Interface) *Manager {
	var strategy Strategy
	if driver == "mysql" {
		strategy = NewGooseStrategy(log)
	} else {
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
