package services

import (
	"errors"
	"fmt"
	"log/slog"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

// IDThenNameResolver resolves a key by catalog id first and then by exact display name
type IDThenNameResolver struct{}

// Resolve implements CategoryResolver
func (IDThenNameResolver) Resolve(categories repositories.CategoryRepositoryInterface, key string) (*models.Category, error) {
	category, err := categories.FindByID(key)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, err
	}

	category, err = categories.FindByName(key)
	if err == nil {
		return category, nil
	}
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, nil
	}
	return nil, err
}

// reconciliationService implements ReconciliationServiceInterface.
// Sync is explicit and on demand; nothing writes both tables implicitly.
type reconciliationService struct {
	store    repositories.StoreInterface
	resolver CategoryResolver
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewReconciliationService creates a reconciliation service. A nil resolver
// falls back to IDThenNameResolver.
func NewReconciliationService(
	store repositories.StoreInterface,
	resolver CategoryResolver,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	if resolver == nil {
		resolver = IDThenNameResolver{}
	}

	return &reconciliationService{
		store:    store,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// SyncLegacyToLinked copies one legacy budget into the linked table.
// It reports false when the category key resolves to nothing.
func (s *reconciliationService) SyncLegacyToLinked(budget models.Budget) (bool, error) {
	return s.syncLegacyToLinked(s.store, budget)
}

// SyncLinkedToLegacy copies one linked budget into the legacy table, keyed by
// the category's display name. It reports false when the category is missing.
func (s *reconciliationService) SyncLinkedToLegacy(monthlyBudget models.MonthlyBudget) (bool, error) {
	return s.syncLinkedToLegacy(s.store, monthlyBudget)
}

// SyncAllLegacyToLinked syncs every legacy budget in one transaction
func (s *reconciliationService) SyncAllLegacyToLinked() (*models.SyncStats, error) {
	stats := &models.SyncStats{}

	err := s.store.WithinTransaction(func(tx repositories.StoreInterface) error {
		budgets, err := tx.Budgets().FindAll()
		if err != nil {
			return err
		}

		stats.Total = len(budgets)
		for _, budget := range budgets {
			synced, err := s.syncLegacyToLinked(tx, budget)
			if err != nil {
				return err
			}
			if synced {
				stats.Synced++
			} else {
				stats.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("legacy to linked sync failed", "error", err)
		return nil, fmt.Errorf("failed to sync legacy budgets: %w", err)
	}

	s.recordSync("legacy_to_linked", stats)
	return stats, nil
}

// SyncAllLinkedToLegacy syncs every linked budget in one transaction
func (s *reconciliationService) SyncAllLinkedToLegacy() (*models.SyncStats, error) {
	stats := &models.SyncStats{}

	err := s.store.WithinTransaction(func(tx repositories.StoreInterface) error {
		monthlyBudgets, err := tx.MonthlyBudgets().FindAll()
		if err != nil {
			return err
		}

		stats.Total = len(monthlyBudgets)
		for _, monthlyBudget := range monthlyBudgets {
			synced, err := s.syncLinkedToLegacy(tx, monthlyBudget)
			if err != nil {
				return err
			}
			if synced {
				stats.Synced++
			} else {
				stats.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("linked to legacy sync failed", "error", err)
		return nil, fmt.Errorf("failed to sync monthly budgets: %w", err)
	}

	s.recordSync("linked_to_legacy", stats)
	return stats, nil
}

// Verify lists the rows of either table that do not line up with the catalog
func (s *reconciliationService) Verify() (*models.CompatibilityReport, error) {
	budgets, err := s.store.Budgets().FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	monthlyBudgets, err := s.store.MonthlyBudgets().FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly budgets: %w", err)
	}

	categoryCount, err := s.store.Categories().Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	report := &models.CompatibilityReport{
		BudgetRecords:                int64(len(budgets)),
		MonthlyBudgetRecords:         int64(len(monthlyBudgets)),
		Categories:                   categoryCount,
		BudgetWithoutCategory:        []models.UnresolvedBudget{},
		MonthlyBudgetWithoutCategory: []models.UnresolvedMonthlyBudget{},
	}

	for _, budget := range budgets {
		category, err := s.resolver.Resolve(s.store.Categories(), budget.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %q: %w", budget.Category, err)
		}
		if category == nil {
			report.BudgetWithoutCategory = append(report.BudgetWithoutCategory, models.UnresolvedBudget{
				ID:       budget.ID,
				Month:    budget.Month,
				Category: budget.Category,
				Amount:   budget.Amount,
			})
		}
	}

	for _, monthlyBudget := range monthlyBudgets {
		exists, err := s.store.Categories().ExistsByID(monthlyBudget.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category %q: %w", monthlyBudget.CategoryID, err)
		}
		if !exists {
			report.MonthlyBudgetWithoutCategory = append(report.MonthlyBudgetWithoutCategory, models.UnresolvedMonthlyBudget{
				ID:         monthlyBudget.ID,
				Month:      monthlyBudget.Month,
				CategoryID: monthlyBudget.CategoryID,
				Amount:     monthlyBudget.Amount,
			})
		}
	}

	report.IsCompatible = len(report.BudgetWithoutCategory) == 0 && len(report.MonthlyBudgetWithoutCategory) == 0

	return report, nil
}

func (s *reconciliationService) syncLegacyToLinked(store repositories.StoreInterface, budget models.Budget) (bool, error) {
	category, err := s.resolver.Resolve(store.Categories(), budget.Category)
	if err != nil {
		return false, fmt.Errorf("failed to resolve category %q: %w", budget.Category, err)
	}
	if category == nil {
		s.logger.Debug("skipping budget with unresolved category", "budget_id", budget.ID, "category", budget.Category)
		return false, nil
	}

	if _, err := store.MonthlyBudgets().Upsert(budget.Month, category.ID, budget.Amount); err != nil {
		return false, err
	}

	return true, nil
}

func (s *reconciliationService) syncLinkedToLegacy(store repositories.StoreInterface, monthlyBudget models.MonthlyBudget) (bool, error) {
	category, err := store.Categories().FindByID(monthlyBudget.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			s.logger.Debug("skipping monthly budget with unknown category", "monthly_budget_id", monthlyBudget.ID, "category_id", monthlyBudget.CategoryID)
			return false, nil
		}
		return false, err
	}

	if _, err := store.Budgets().Upsert(monthlyBudget.Month, category.Name, monthlyBudget.Amount); err != nil {
		return false, err
	}

	return true, nil
}

func (s *reconciliationService) recordSync(direction string, stats *models.SyncStats) {
	s.metrics.IncrementCounter("reconciliation_runs_total", map[string]string{"direction": direction})
	s.metrics.RecordGauge("reconciliation_skipped", float64(stats.Skipped), map[string]string{"direction": direction})

	s.logger.Info("reconciliation completed",
		"direction", direction,
		"total", stats.Total,
		"synced", stats.Synced,
		"skipped", stats.Skipped,
	)
}
