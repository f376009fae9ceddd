package repositories

import (
	"errors"

	"household-budget/internal/models"

	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new legacy budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

// Upsert overwrites the amount of the (month, category) row or inserts it.
// A concurrent insert of the same key is retried once as an update.
func (r *budgetRepository) Upsert(month, category string, amount int64) (*models.Budget, error) {
	budget, err := r.upsertOnce(month, category, amount)
	if err != nil && isDuplicateKeyError(err) {
		budget, err = r.upsertOnce(month, category, amount)
	}
	if err != nil {
		return nil, &DatabaseError{Op: "upsert budget", Err: err}
	}

	return budget, nil
}

func (r *budgetRepository) upsertOnce(month, category string, amount int64) (*models.Budget, error) {
	var budget models.Budget

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("month = ? AND category = ?", month, category).First(&budget).Error
		switch {
		case err == nil:
			budget.Amount = amount
			return tx.Save(&budget).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.Budget{Month: month, Category: category, Amount: amount}
			return tx.Create(&budget).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

// FindByID retrieves a budget by ID
func (r *budgetRepository) FindByID(id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, &DatabaseError{Op: "find budget by ID", Err: err}
	}

	return &budget, nil
}

// FindByMonth retrieves all budgets of a month
func (r *budgetRepository) FindByMonth(month string) ([]models.Budget, error) {
	budgets := []models.Budget{}
	if err := r.db.Where("month = ?", month).Order("id").Find(&budgets).Error; err != nil {
		return nil, &DatabaseError{Op: "find budgets by month", Err: err}
	}

	return budgets, nil
}

// FindAll retrieves every legacy budget row
func (r *budgetRepository) FindAll() ([]models.Budget, error) {
	budgets := []models.Budget{}
	if err := r.db.Order("id").Find(&budgets).Error; err != nil {
		return nil, &DatabaseError{Op: "list budgets", Err: err}
	}

	return budgets, nil
}

// Delete removes a budget by ID
func (r *budgetRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Budget{}, id)
	if result.Error != nil {
		return &DatabaseError{Op: "delete budget", Err: result.Error}
	}

	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// SumByMonth returns the total budget amount of a month, zero when empty
func (r *budgetRepository) SumByMonth(month string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Budget{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, &DatabaseError{Op: "sum budgets", Err: err}
	}

	return total, nil
}

// Count returns the number of legacy budget rows
func (r *budgetRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Budget{}).Count(&count).Error; err != nil {
		return 0, &DatabaseError{Op: "count budgets", Err: err}
	}
	return count, nil
}
