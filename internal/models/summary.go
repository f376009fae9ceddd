package models

// BudgetStatus is the three-tier spending status of a month
type BudgetStatus string

const (
	BudgetStatusOK     BudgetStatus = "OK"
	BudgetStatusWarn   BudgetStatus = "WARN"
	BudgetStatusDanger BudgetStatus = "DANGER"
)

// Usage-rate thresholds, inclusive at the lower edge of each band
const (
	WarnUsageThreshold   = 70.0
	DangerUsageThreshold = 90.0
)

// Summary is the derived monthly spending summary. It is never persisted.
type Summary struct {
	Month         string       `json:"month"`
	Source        BudgetSource `json:"source"`
	TotalBudget   int64        `json:"total_budget"`
	TotalSpent    int64        `json:"total_spent"`
	Remaining     int64        `json:"remaining"`
	RemainingDays int          `json:"remaining_days"`
	PerDayBudget  *float64     `json:"per_day_budget"`
	UsageRate     float64      `json:"usage_rate"`
	Status        BudgetStatus `json:"status"`
	StatusMessage string       `json:"status_message"`
	StatusColor   string       `json:"status_color"`
}

// StatusForUsageRate buckets a usage rate into status, message and color
func StatusForUsageRate(usageRate float64) (BudgetStatus, string, string) {
	switch {
	case usageRate < WarnUsageThreshold:
		return BudgetStatusOK, "予算内で順調です", "green"
	case usageRate < DangerUsageThreshold:
		return BudgetStatusWarn, "予算の70%を超えました。注意してください", "yellow"
	default:
		return BudgetStatusDanger, "予算の90%を超えました！支出を抑えてください", "red"
	}
}

// MonthlyBudgetTotal is the budget total of one month
type MonthlyBudgetTotal struct {
	Month       string `json:"month"`
	TotalBudget int64  `json:"total_budget"`
}
