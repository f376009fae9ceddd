package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

var (
	ErrMonthlyBudgetNotFound = errors.New("monthly budget not found")
	ErrUnknownCategory       = errors.New("category id does not exist in the catalog")
)

// monthlyBudgetService implements MonthlyBudgetServiceInterface over the catalog-linked table
type monthlyBudgetService struct {
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface
	categoryRepo      repositories.CategoryRepositoryInterface
	metrics           MetricsRecorderInterface
	logger            *slog.Logger
}

// NewMonthlyBudgetService creates a new catalog-linked budget service
func NewMonthlyBudgetService(
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MonthlyBudgetServiceInterface {
	return &monthlyBudgetService{
		monthlyBudgetRepo: monthlyBudgetRepo,
		categoryRepo:      categoryRepo,
		metrics:           metrics,
		logger:            logger,
	}
}

// UpsertMonthlyBudget creates or overwrites the budget of (month, category_id).
// The category must exist in the catalog.
func (s *monthlyBudgetService) UpsertMonthlyBudget(month, categoryID string, amount int64) (*models.MonthlyBudget, error) {
	start := time.Now()

	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}
	if amount < 0 {
		return nil, models.ErrNegativeAmount
	}

	exists, err := s.categoryRepo.ExistsByID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}
	if !exists {
		return nil, ErrUnknownCategory
	}

	budget, err := s.monthlyBudgetRepo.Upsert(month, categoryID, amount)
	if err != nil {
		s.metrics.IncrementCounter("budget_upserts_total", map[string]string{"source": string(models.BudgetSourceLinked), "status": "failed"})
		s.logger.Error("failed to upsert monthly budget", "month", month, "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("failed to upsert monthly budget: %w", err)
	}

	s.metrics.IncrementCounter("budget_upserts_total", map[string]string{"source": string(models.BudgetSourceLinked), "status": "success"})
	s.metrics.RecordProcessingTime("budget_upsert", time.Since(start))

	return budget, nil
}

// ListMonthlyBudgets returns the month's budgets joined with the catalog
func (s *monthlyBudgetService) ListMonthlyBudgets(month, categoryType string) ([]models.MonthlyBudgetDetail, error) {
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}
	if categoryType != "" && !models.IsValidCategoryType(categoryType) {
		return nil, models.ErrInvalidCategoryType
	}

	details, err := s.monthlyBudgetRepo.FindDetailsByMonth(month, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly budgets: %w", err)
	}

	return details, nil
}

// GetMonthlyBudget returns one linked budget
func (s *monthlyBudgetService) GetMonthlyBudget(id uint) (*models.MonthlyBudget, error) {
	budget, err := s.monthlyBudgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMonthlyBudgetNotFound) {
			return nil, ErrMonthlyBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get monthly budget: %w", err)
	}

	return budget, nil
}

// DeleteMonthlyBudget removes one linked budget
func (s *monthlyBudgetService) DeleteMonthlyBudget(id uint) error {
	if err := s.monthlyBudgetRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrMonthlyBudgetNotFound) {
			return ErrMonthlyBudgetNotFound
		}
		return fmt.Errorf("failed to delete monthly budget: %w", err)
	}

	s.logger.Info("monthly budget deleted", "monthly_budget_id", id)
	return nil
}

// TotalForMonth sums the linked budgets of a month
func (s *monthlyBudgetService) TotalForMonth(month string) (*models.MonthlyBudgetTotal, error) {
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}

	total, err := s.monthlyBudgetRepo.SumByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("failed to total monthly budgets: %w", err)
	}

	return &models.MonthlyBudgetTotal{Month: month, TotalBudget: total}, nil
}

// SeedDefaultBudgets inserts the default amount of every catalog category
// that has no budget for the month yet, and returns how many were inserted
func (s *monthlyBudgetService) SeedDefaultBudgets(month string) (int, error) {
	if !models.IsValidMonthKey(month) {
		return 0, models.ErrInvalidMonthKey
	}

	categories, err := s.categoryRepo.List("")
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}

	defaults := models.DefaultMonthlyBudgets()
	inserted := 0

	for _, category := range categories {
		amount, ok := defaults[category.ID]
		if !ok {
			continue
		}

		created, err := s.monthlyBudgetRepo.CreateIfAbsent(month, category.ID, amount)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed budget for %s: %w", category.ID, err)
		}
		if created {
			inserted++
		}
	}

	if inserted > 0 {
		s.logger.Info("seeded default monthly budgets", "month", month, "inserted", inserted)
	}

	return inserted, nil
}
