package services

import (
	"fmt"
	"log/slog"
)

// SeedResult reports what a startup seeding run inserted
type SeedResult struct {
	Month      string `json:"month"`
	Categories int    `json:"categories"`
	Budgets    int    `json:"budgets"`
}

// Seeder fills an empty database with the built-in catalog and the current
// month's default linked budgets. Running it again inserts nothing.
type Seeder struct {
	categories     CategoryServiceInterface
	monthlyBudgets MonthlyBudgetServiceInterface
	summary        SummaryServiceInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewSeeder creates a seeder; summary supplies the current month
func NewSeeder(
	categories CategoryServiceInterface,
	monthlyBudgets MonthlyBudgetServiceInterface,
	summary SummaryServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		categories:     categories,
		monthlyBudgets: monthlyBudgets,
		summary:        summary,
		metrics:        metrics,
		logger:         logger,
	}
}

// Seed runs category seeding and then default budget seeding
func (s *Seeder) Seed() (*SeedResult, error) {
	result := &SeedResult{Month: s.summary.CurrentMonth()}

	inserted, err := s.categories.SeedDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	result.Categories = inserted

	inserted, err = s.monthlyBudgets.SeedDefaultBudgets(result.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to seed monthly budgets: %w", err)
	}
	result.Budgets = inserted

	s.metrics.RecordGauge("seeded_rows", float64(result.Categories), map[string]string{"table": "categories"})
	s.metrics.RecordGauge("seeded_rows", float64(result.Budgets), map[string]string{"table": "monthly_budgets"})

	s.logger.Info("seed completed",
		"month", result.Month,
		"categories", result.Categories,
		"budgets", result.Budgets,
	)

	return result, nil
}
