package database

import (
	"path/filepath"
	"testing"

	"household-budget/internal/config"
	"household-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize_SQLiteCreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "home_finance.db")

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			Path:        path,
			AutoMigrate: true,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
	assert.NoError(t, db.HealthCheck())

	for _, table := range []string{"categories", "budgets", "monthly_budgets", "expenses"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Expense{}, "idx_expenses_month_category"))
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSetupTestDB_TransactionRollsBack(t *testing.T) {
	db := SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Budget{Month: "2025-12", Category: "食費", Amount: 1}).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Model(&models.Budget{}).Count(&count).Error)
	assert.Zero(t, count)
}
