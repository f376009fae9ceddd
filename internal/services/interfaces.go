package services

import (
	"io"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

// CategoryServiceInterface defines the contract for catalog operations
type CategoryServiceInterface interface {
	SeedDefaults() (int, error)
	ListCategories(categoryType string) ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
}

// BudgetServiceInterface defines the contract for legacy budget operations
type BudgetServiceInterface interface {
	UpsertBudget(month, category string, amount int64) (*models.Budget, error)
	ListBudgets(month string) ([]models.Budget, error)
	GetBudget(id uint) (*models.Budget, error)
	DeleteBudget(id uint) error
	TotalForMonth(month string) (*models.MonthlyBudgetTotal, error)
}

// MonthlyBudgetServiceInterface defines the contract for catalog-linked budget operations
type MonthlyBudgetServiceInterface interface {
	UpsertMonthlyBudget(month, categoryID string, amount int64) (*models.MonthlyBudget, error)
	ListMonthlyBudgets(month, categoryType string) ([]models.MonthlyBudgetDetail, error)
	GetMonthlyBudget(id uint) (*models.MonthlyBudget, error)
	DeleteMonthlyBudget(id uint) error
	TotalForMonth(month string) (*models.MonthlyBudgetTotal, error)
	SeedDefaultBudgets(month string) (int, error)
}

// ExpenseServiceInterface defines the contract for expense ledger operations
type ExpenseServiceInterface interface {
	RecordExpense(input RecordExpenseInput) (*models.Expense, error)
	ListExpenses(filters models.ExpenseFilters) ([]models.Expense, error)
	GetExpense(id uint) (*models.Expense, error)
	DeleteExpense(id uint) error
	Statistics(month string) (map[string]int64, error)
}

// SampleExpenseGeneratorInterface produces plausible expenses for local development
type SampleExpenseGeneratorInterface interface {
	GenerateMonth(month string, count int) ([]RecordExpenseInput, error)
}

// ExportServiceInterface renders a month of expenses as a spreadsheet
type ExportServiceInterface interface {
	ExportMonth(month string, w io.Writer) error
	FileName(month string) string
}

// SummaryServiceInterface defines the contract for the monthly summary
type SummaryServiceInterface interface {
	CalculateSummary(month string, source models.BudgetSource) (*models.Summary, error)
	CurrentMonth() string
}

// ReconciliationServiceInterface defines the contract for syncing the two budget tables
type ReconciliationServiceInterface interface {
	SyncLegacyToLinked(budget models.Budget) (bool, error)
	SyncLinkedToLegacy(monthlyBudget models.MonthlyBudget) (bool, error)
	SyncAllLegacyToLinked() (*models.SyncStats, error)
	SyncAllLinkedToLegacy() (*models.SyncStats, error)
	Verify() (*models.CompatibilityReport, error)
}

// CategoryResolver maps a free-form category key onto a catalog entry.
// It returns nil and no error when nothing matches.
type CategoryResolver interface {
	Resolve(categories repositories.CategoryRepositoryInterface, key string) (*models.Category, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time
