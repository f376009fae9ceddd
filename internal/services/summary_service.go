package services

import (
	"fmt"
	"log/slog"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

// summaryService implements SummaryServiceInterface
type summaryService struct {
	budgetRepo        repositories.BudgetRepositoryInterface
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface
	expenseRepo       repositories.ExpenseRepositoryInterface
	location          *time.Location
	now               Clock
	metrics           MetricsRecorderInterface
	logger            *slog.Logger
}

// NewSummaryService creates the monthly summary calculator. All "today"
// arithmetic happens in location, never in the host's local zone.
func NewSummaryService(
	budgetRepo repositories.BudgetRepositoryInterface,
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	location *time.Location,
	now Clock,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}

	return &summaryService{
		budgetRepo:        budgetRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
		expenseRepo:       expenseRepo,
		location:          location,
		now:               now,
		metrics:           metrics,
		logger:            logger,
	}
}

// CurrentMonth returns the month key of today in the configured timezone
func (s *summaryService) CurrentMonth() string {
	return models.MonthKeyOf(s.today())
}

// CalculateSummary aggregates the month's budgets from the chosen source and
// its expenses into a Summary
func (s *summaryService) CalculateSummary(month string, source models.BudgetSource) (*models.Summary, error) {
	start := time.Now()

	if month == "" {
		month = s.CurrentMonth()
	}
	if !models.IsValidMonthKey(month) {
		return nil, models.ErrInvalidMonthKey
	}
	if source == "" {
		source = models.BudgetSourceLegacy
	}

	totalBudget, err := s.totalBudget(month, source)
	if err != nil {
		return nil, err
	}

	totalSpent, err := s.expenseRepo.SumByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	remaining := totalBudget - totalSpent

	remainingDays, err := RemainingDays(month, s.today())
	if err != nil {
		return nil, err
	}

	var perDayBudget *float64
	if remainingDays > 0 {
		perDay := float64(remaining) / float64(remainingDays)
		perDayBudget = &perDay
	}

	usageRate := 0.0
	if totalBudget > 0 {
		usageRate = float64(totalSpent) / float64(totalBudget) * 100
	}

	status, message, color := models.StatusForUsageRate(usageRate)

	s.metrics.IncrementCounter("summary_calculated_total", map[string]string{"source": string(source), "status": string(status)})
	s.metrics.RecordProcessingTime("summary_calculation", time.Since(start))

	return &models.Summary{
		Month:         month,
		Source:        source,
		TotalBudget:   totalBudget,
		TotalSpent:    totalSpent,
		Remaining:     remaining,
		RemainingDays: remainingDays,
		PerDayBudget:  perDayBudget,
		UsageRate:     usageRate,
		Status:        status,
		StatusMessage: message,
		StatusColor:   color,
	}, nil
}

func (s *summaryService) totalBudget(month string, source models.BudgetSource) (int64, error) {
	switch source {
	case models.BudgetSourceLegacy:
		total, err := s.budgetRepo.SumByMonth(month)
		if err != nil {
			return 0, fmt.Errorf("failed to total budgets: %w", err)
		}
		return total, nil
	case models.BudgetSourceLinked:
		total, err := s.monthlyBudgetRepo.SumByMonth(month)
		if err != nil {
			return 0, fmt.Errorf("failed to total monthly budgets: %w", err)
		}
		return total, nil
	default:
		return 0, models.ErrInvalidBudgetSource
	}
}

func (s *summaryService) today() time.Time {
	return s.now().In(s.location)
}

// RemainingDays counts the days from today (inclusive) to the end of month.
// A past month yields 0 and a future month yields its full length. The
// calendar date of today is taken in today's own location.
func RemainingDays(month string, today time.Time) (int, error) {
	first, err := models.ParseMonthKey(month)
	if err != nil {
		return 0, err
	}

	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC)

	switch {
	case day.After(last):
		return 0, nil
	case !day.Before(first):
		days := int(last.Sub(day).Hours()/24) + 1
		if days < 0 {
			days = 0
		}
		return days, nil
	case day.Before(first):
		return models.DaysInMonth(first.Year(), first.Month()), nil
	default:
		return 0, nil
	}
}
