package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

var ErrExpenseNotFound = errors.New("expense not found")

// RecordExpenseInput carries a new ledger entry. An empty Date means today.
type RecordExpenseInput struct {
	Date     string
	Category string
	Amount   int64
	Memo     *string
}

// expenseService implements ExpenseServiceInterface
type expenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	location    *time.Location
	now         Clock
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewExpenseService creates a new expense ledger service. Dates defaulted to
// today are computed in location.
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	location *time.Location,
	now Clock,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}

	return &expenseService{
		expenseRepo: expenseRepo,
		location:    location,
		now:         now,
		metrics:     metrics,
		logger:      logger,
	}
}

// RecordExpense stores a new expense. Its month is cut from the date string.
func (s *expenseService) RecordExpense(input RecordExpenseInput) (*models.Expense, error) {
	date := input.Date
	if date == "" {
		date = s.now().In(s.location).Format(models.DateLayout)
	}

	if !models.IsValidDate(date) {
		return nil, models.ErrInvalidDate
	}
	if input.Amount < 0 {
		return nil, models.ErrNegativeAmount
	}

	expense := &models.Expense{
		Date:     date,
		Category: input.Category,
		Amount:   input.Amount,
		Memo:     input.Memo,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		if errors.Is(err, models.ErrInvalidCategoryKey) {
			return nil, models.ErrInvalidCategoryKey
		}
		s.metrics.IncrementCounter("expenses_recorded_total", map[string]string{"status": "failed"})
		s.logger.Error("failed to record expense", "date", date, "category", input.Category, "error", err)
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	s.metrics.IncrementCounter("expenses_recorded_total", map[string]string{"status": "success"})
	s.metrics.RecordGauge("expense_amount", float64(expense.Amount), nil)

	return expense, nil
}

// ListExpenses returns the expenses matching the filters, ordered by date.
// With no filter at all the result is empty.
func (s *expenseService) ListExpenses(filters models.ExpenseFilters) ([]models.Expense, error) {
	if filters.Month != "" && !models.IsValidMonthKey(filters.Month) {
		return nil, models.ErrInvalidMonthKey
	}

	expenses, err := s.expenseRepo.Find(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// GetExpense returns one expense
func (s *expenseService) GetExpense(id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes one expense
func (s *expenseService) DeleteExpense(id uint) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}

// Statistics maps each category to its summed spending for the month
func (s *expenseService) Statistics(month string) (map[string]int64, error) {
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}

	totals, err := s.expenseRepo.SumByCategory(month)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expense statistics: %w", err)
	}

	stats := make(map[string]int64, len(totals))
	for _, t := range totals {
		stats[t.Category] = t.Total
	}

	return stats, nil
}
