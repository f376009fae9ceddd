package dto

// Budget request DTOs

// UpsertBudgetRequest is the body of POST /budgets. Amount is a pointer so
// that a missing amount is told apart from an explicit 0.
type UpsertBudgetRequest struct {
	Month    string `json:"month" validate:"required,month_key"`
	Category string `json:"category" validate:"required,category_key"`
	Amount   *int64 `json:"amount" validate:"required,gte=0"`
}

// UpsertMonthlyBudgetRequest is the body of POST /monthly-budgets
type UpsertMonthlyBudgetRequest struct {
	Month      string `json:"month" validate:"required,month_key"`
	CategoryID string `json:"category_id" validate:"required,max=50"`
	Amount     *int64 `json:"amount" validate:"required,gte=0"`
}

// ListBudgetsQuery filters GET /budgets
type ListBudgetsQuery struct {
	Month string `query:"month" validate:"omitempty,month_key"`
}

// ListMonthlyBudgetsQuery filters GET /monthly-budgets
type ListMonthlyBudgetsQuery struct {
	Month        string `query:"month" validate:"required,month_key"`
	CategoryType string `query:"category_type" validate:"omitempty,category_type"`
}

// MonthPath binds a {month} path segment
type MonthPath struct {
	Month string `param:"month" validate:"required,month_key"`
}

// Budget response DTOs

// SeedDefaultsResponse reports how many default budgets were inserted for a month
type SeedDefaultsResponse struct {
	Month    string `json:"month"`
	Inserted int    `json:"inserted"`
}
