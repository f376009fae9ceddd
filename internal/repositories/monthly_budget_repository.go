package repositories

import (
	"errors"

	"household-budget/internal/models"

	"gorm.io/gorm"
)

var ErrMonthlyBudgetNotFound = errors.New("monthly budget not found")

// monthlyBudgetRepository implements MonthlyBudgetRepositoryInterface
type monthlyBudgetRepository struct {
	db *gorm.DB
}

// NewMonthlyBudgetRepository creates a new catalog-linked budget repository
func NewMonthlyBudgetRepository(db *gorm.DB) MonthlyBudgetRepositoryInterface {
	return &monthlyBudgetRepository{db: db}
}

// Upsert overwrites the amount of the (month, category_id) row or inserts it
func (r *monthlyBudgetRepository) Upsert(month, categoryID string, amount int64) (*models.MonthlyBudget, error) {
	budget, err := r.upsertOnce(month, categoryID, amount)
	if err != nil && isDuplicateKeyError(err) {
		budget, err = r.upsertOnce(month, categoryID, amount)
	}
	if err != nil {
		return nil, &DatabaseError{Op: "upsert monthly budget", Err: err}
	}

	return budget, nil
}

func (r *monthlyBudgetRepository) upsertOnce(month, categoryID string, amount int64) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("month = ? AND category_id = ?", month, categoryID).First(&budget).Error
		switch {
		case err == nil:
			budget.Amount = amount
			return tx.Save(&budget).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.MonthlyBudget{Month: month, CategoryID: categoryID, Amount: amount}
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

// CreateIfAbsent inserts the row only when (month, category_id) has none yet.
// It reports whether a row was inserted.
func (r *monthlyBudgetRepository) CreateIfAbsent(month, categoryID string, amount int64) (bool, error) {
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MonthlyBudget{}).
			Where("month = ? AND category_id = ?", month, categoryID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		budget := models.MonthlyBudget{Month: month, CategoryID: categoryID, Amount: amount}
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, &DatabaseError{Op: "create monthly budget", Err: err}
	}

	return created, nil
}

// FindByID retrieves a monthly budget by ID
func (r *monthlyBudgetRepository) FindByID(id uint) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	if err := r.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonthlyBudgetNotFound
		}
		return nil, &DatabaseError{Op: "find monthly budget by ID", Err: err}
	}

	return &budget, nil
}

// FindByMonth retrieves all monthly budgets of a month
func (r *monthlyBudgetRepository) FindByMonth(month string) ([]models.MonthlyBudget, error) {
	budgets := []models.MonthlyBudget{}
	if err := r.db.Where("month = ?", month).Order("id").Find(&budgets).Error; err != nil {
		return nil, &DatabaseError{Op: "find monthly budgets by month", Err: err}
	}

	return budgets, nil
}

// FindDetailsByMonth joins the month's budgets with the catalog, optionally
// filtered by category type. Rows whose category is missing are left out.
func (r *monthlyBudgetRepository) FindDetailsByMonth(month, categoryType string) ([]models.MonthlyBudgetDetail, error) {
	details := []models.MonthlyBudgetDetail{}

	query := r.db.Table("monthly_budgets").
		Select("monthly_budgets.id, monthly_budgets.month, monthly_budgets.category_id, " +
			"categories.name AS category_name, categories.type AS category_type, monthly_budgets.amount").
		Joins("JOIN categories ON categories.id = monthly_budgets.category_id").
		Where("monthly_budgets.month = ?", month)

	if categoryType != "" {
		query = query.Where("categories.type = ?", categoryType)
	}

	if err := query.Order("monthly_budgets.id").Scan(&details).Error; err != nil {
		return nil, &DatabaseError{Op: "find monthly budget details", Err: err}
	}

	return details, nil
}

// FindAll retrieves every monthly budget row
func (r *monthlyBudgetRepository) FindAll() ([]models.MonthlyBudget, error) {
	budgets := []models.MonthlyBudget{}
	if err := r.db.Order("id").Find(&budgets).Error; err != nil {
		return nil, &DatabaseError{Op: "list monthly budgets", Err: err}
	}

	return budgets, nil
}

// Delete removes a monthly budget by ID
func (r *monthlyBudgetRepository) Delete(id uint) error {
	result := r.db.Delete(&models.MonthlyBudget{}, id)
	if result.Error != nil {
		return &DatabaseError{Op: "delete monthly budget", Err: result.Error}
	}

	if result.RowsAffected == 0 {
		return ErrMonthlyBudgetNotFound
	}

	return nil
}

// SumByMonth returns the total linked budget amount of a month, zero when empty
func (r *monthlyBudgetRepository) SumByMonth(month string) (int64, error) {
	var total int64
	err := r.db.Model(&models.MonthlyBudget{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, &DatabaseError{Op: "sum monthly budgets", Err: err}
	}

	return total, nil
}

// Count returns the number of monthly budget rows
func (r *monthlyBudgetRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.MonthlyBudget{}).Count(&count).Error; err != nil {
		return 0, &DatabaseError{Op: "count monthly budgets", Err: err}
	}
	return count, nil
}
