package repositories

import (
	"household-budget/internal/models"
)

// CategoryRepositoryInterface defines the contract for catalog category operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	List(categoryType string) ([]models.Category, error)
	ExistsByID(id string) (bool, error)
	Count() (int64, error)
}

// BudgetRepositoryInterface defines the contract for legacy budget operations
type BudgetRepositoryInterface interface {
	Upsert(month, category string, amount int64) (*models.Budget, error)
	FindByID(id uint) (*models.Budget, error)
	FindByMonth(month string) ([]models.Budget, error)
	FindAll() ([]models.Budget, error)
	Delete(id uint) error
	SumByMonth(month string) (int64, error)
	Count() (int64, error)
}

// MonthlyBudgetRepositoryInterface defines the contract for catalog-linked budget operations
type MonthlyBudgetRepositoryInterface interface {
	Upsert(month, categoryID string, amount int64) (*models.MonthlyBudget, error)
	CreateIfAbsent(month, categoryID string, amount int64) (bool, error)
	FindByID(id uint) (*models.MonthlyBudget, error)
	FindByMonth(month string) ([]models.MonthlyBudget, error)
	FindDetailsByMonth(month, categoryType string) ([]models.MonthlyBudgetDetail, error)
	FindAll() ([]models.MonthlyBudget, error)
	Delete(id uint) error
	SumByMonth(month string) (int64, error)
	Count() (int64, error)
}

// ExpenseRepositoryInterface defines the contract for expense ledger operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	FindByID(id uint) (*models.Expense, error)
	Find(filters models.ExpenseFilters) ([]models.Expense, error)
	Delete(id uint) error
	SumByMonth(month string) (int64, error)
	SumByCategory(month string) ([]models.CategoryTotal, error)
}
