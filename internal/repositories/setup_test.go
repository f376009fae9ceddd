package repositories

import (
	"testing"

	"household-budget/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a migrated in-memory database pinned to one connection,
// since every sqlite :memory: connection is a separate database
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Category{}, &models.Budget{}, &models.MonthlyBudget{}, &models.Expense{})
	require.NoError(t, err)

	return db
}

func closeTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func seedCategories(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, category := range models.DefaultCategories() {
		require.NoError(t, db.Create(&category).Error)
	}
}
