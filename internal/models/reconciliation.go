package models

// SyncStats reports the outcome of a bulk reconciliation run
type SyncStats struct {
	Total   int `json:"total"`
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// UnresolvedBudget is a legacy budget whose category matches no catalog entry
type UnresolvedBudget struct {
	ID       uint   `json:"id"`
	Month    string `json:"month"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// UnresolvedMonthlyBudget is a linked budget whose category id is missing from the catalog
type UnresolvedMonthlyBudget struct {
	ID         uint   `json:"id"`
	Month      string `json:"month"`
	CategoryID string `json:"category_id"`
	Amount     int64  `json:"amount"`
}

// CompatibilityReport describes how well the two budget tables line up with the catalog
type CompatibilityReport struct {
	BudgetRecords                int64                     `json:"budget_records"`
	MonthlyBudgetRecords         int64                     `json:"monthly_budget_records"`
	Categories                   int64                     `json:"categories"`
	BudgetWithoutCategory        []UnresolvedBudget        `json:"budget_without_category"`
	MonthlyBudgetWithoutCategory []UnresolvedMonthlyBudget `json:"monthly_budget_without_category"`
	IsCompatible                 bool                      `json:"is_compatible"`
}
