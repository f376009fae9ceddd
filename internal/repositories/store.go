package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// StoreInterface groups the repositories over one gorm handle so that a
// caller can run several of them inside a single transaction
type StoreInterface interface {
	Categories() CategoryRepositoryInterface
	Budgets() BudgetRepositoryInterface
	MonthlyBudgets() MonthlyBudgetRepositoryInterface
	Expenses() ExpenseRepositoryInterface
	WithinTransaction(fn func(store StoreInterface) error) error
}

// Store is the gorm-backed StoreInterface
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Categories() CategoryRepositoryInterface {
	return NewCategoryRepository(s.db)
}

func (s *Store) Budgets() BudgetRepositoryInterface {
	return NewBudgetRepository(s.db)
}

func (s *Store) MonthlyBudgets() MonthlyBudgetRepositoryInterface {
	return NewMonthlyBudgetRepository(s.db)
}

func (s *Store) Expenses() ExpenseRepositoryInterface {
	return NewExpenseRepository(s.db)
}

// WithinTransaction runs fn against a store bound to one transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (s *Store) WithinTransaction(fn func(store StoreInterface) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
