package models

import "errors"

// BudgetSource selects which budget table a caller aggregates over
type BudgetSource string

const (
	// BudgetSourceLegacy reads the free-text category budgets table
	BudgetSourceLegacy BudgetSource = "legacy"
	// BudgetSourceLinked reads the catalog-linked monthly budgets table
	BudgetSourceLinked BudgetSource = "linked"
)

var ErrInvalidBudgetSource = errors.New("budget source must be legacy or linked")

// ParseBudgetSource parses a source name; empty means legacy
func ParseBudgetSource(s string) (BudgetSource, error) {
	switch BudgetSource(s) {
	case "", BudgetSourceLegacy:
		return BudgetSourceLegacy, nil
	case BudgetSourceLinked:
		return BudgetSourceLinked, nil
	default:
		return "", ErrInvalidBudgetSource
	}
}
