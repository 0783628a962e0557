package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spacebook/spacebook/internal/domain/space"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// one connection, otherwise every connection opens its own empty
	// in-memory database
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&models.UserModel{},
		&models.SpaceModel{},
		&models.ReservationModel{},
		&models.ReservationHistoryModel{},
		&models.SettingModel{},
		&models.NotificationModel{},
	))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}

func createTestSpace(t *testing.T, repo *SpaceRepository, name string) *space.Space {
	t.Helper()
	window, err := spacevo.ParseOperatingWindow("08:00", "22:00")
	require.NoError(t, err)
	s, err := space.NewSpace(name, "Bloque A", 100, []string{"projector"}, "", window)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), s))
	return s
}

func testLogger() logger.Interface {
	return logger.NewNop()
}

// baseDay is far enough ahead that nothing depends on the current date.
var baseDay = time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return baseDay.Add(time.Duration(hour) * time.Hour)
}
