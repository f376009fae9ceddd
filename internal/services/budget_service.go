package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

var ErrBudgetNotFound = errors.New("budget not found")

// budgetService implements BudgetServiceInterface over the legacy budgets table
type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewBudgetService creates a new legacy budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// UpsertBudget creates or overwrites the budget of (month, category)
func (s *budgetService) UpsertBudget(month, category string, amount int64) (*models.Budget, error) {
	start := time.Now()

	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}
	if amount < 0 {
		return nil, models.ErrNegativeAmount
	}

	budget, err := s.budgetRepo.Upsert(month, category, amount)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCategoryKey) {
			return nil, err
		}
		s.metrics.IncrementCounter("budget_upserts_total", map[string]string{"source": string(models.BudgetSourceLegacy), "status": "failed"})
		s.logger.Error("failed to upsert budget", "month", month, "category", category, "error", err)
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	s.metrics.IncrementCounter("budget_upserts_total", map[string]string{"source": string(models.BudgetSourceLegacy), "status": "success"})
	s.metrics.RecordProcessingTime("budget_upsert", time.Since(start))

	return budget, nil
}

// ListBudgets returns the budgets of a month. An empty month yields an empty list.
func (s *budgetService) ListBudgets(month string) ([]models.Budget, error) {
	if month == "" {
		return []models.Budget{}, nil
	}
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}

	budgets, err := s.budgetRepo.FindByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// GetBudget returns one legacy budget
func (s *budgetService) GetBudget(id uint) (*models.Budget, error) {
	budget, err := s.budgetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return budget, nil
}

// DeleteBudget removes one legacy budget
func (s *budgetService) DeleteBudget(id uint) error {
	if err := s.budgetRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.logger.Info("budget deleted", "budget_id", id)
	return nil
}

// TotalForMonth sums the legacy budgets of a month
func (s *budgetService) TotalForMonth(month string) (*models.MonthlyBudgetTotal, error) {
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}

	total, err := s.budgetRepo.SumByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("failed to total budgets: %w", err)
	}

	return &models.MonthlyBudgetTotal{Month: month, TotalBudget: total}, nil
}
