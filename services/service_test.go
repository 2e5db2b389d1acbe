package services

import (
	"fmt"
	"testing"

	"github.com/vidheexx/Nutrimate/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens an isolated in-memory database migrated with the full
// schema. The DSN is keyed by test name so parallel tests do not share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DailyGoal{},
		&models.BowlCalibration{},
		&models.Meal{},
	))
	return db
}
