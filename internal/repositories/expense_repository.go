package repositories

import (
	"errors"

	"household-budget/internal/models"

	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

// Create records a new expense. The month is derived from the date by the model hook.
func (r *expenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return &DatabaseError{Op: "create expense", Err: err}
	}

	return nil
}

// FindByID retrieves an expense by ID
func (r *expenseRepository) FindByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, &DatabaseError{Op: "find expense by ID", Err: err}
	}

	return &expense, nil
}

// Find returns expenses matching the month and/or category filters.
// With neither filter set no rows are returned.
func (r *expenseRepository) Find(filters models.ExpenseFilters) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if filters.IsEmpty() {
		return expenses, nil
	}

	query := r.db.Model(&models.Expense{})
	if filters.Month != "" {
		query = query.Where("month = ?", filters.Month)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if err := query.Order("date").Order("id").Find(&expenses).Error; err != nil {
		return nil, &DatabaseError{Op: "find expenses", Err: err}
	}

	return expenses, nil
}

// Delete removes an expense by ID
func (r *expenseRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return &DatabaseError{Op: "delete expense", Err: result.Error}
	}

	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// SumByMonth returns the total spent in a month, zero when empty
func (r *expenseRepository) SumByMonth(month string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Expense{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, &DatabaseError{Op: "sum expenses", Err: err}
	}

	return total, nil
}

// SumByCategory groups a month's expenses by category
func (r *expenseRepository) SumByCategory(month string) ([]models.CategoryTotal, error) {
	totals := []models.CategoryTotal{}
	err := r.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("month = ?", month).
		Group("category").
		Order("category").
		Scan(&totals).Error
	if err != nil {
		return nil, &DatabaseError{Op: "sum expenses by category", Err: err}
	}

	return totals, nil
}
