package models

import (
	"time"

	"gorm.io/gorm"
)

// MonthlyBudget is the catalog-linked budget form
type MonthlyBudget struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Month      string    `gorm:"type:varchar(7);not null;uniqueIndex:uq_monthly_budgets_month_category;index:idx_monthly_budgets_month" json:"month"`
	CategoryID string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_monthly_budgets_month_category;index:idx_monthly_budgets_category_id" json:"category_id"`
	Amount     int64     `gorm:"not null;check:amount >= 0" json:"amount"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
}

// BeforeCreate hook for MonthlyBudget
func (m *MonthlyBudget) BeforeCreate(tx *gorm.DB) error {
	return m.Validate()
}

// BeforeUpdate hook for MonthlyBudget
func (m *MonthlyBudget) BeforeUpdate(tx *gorm.DB) error {
	return m.Validate()
}

// Validate validates the monthly budget fields
func (m *MonthlyBudget) Validate() error {
	if !IsValidMonthKey(m.Month) {
		return ErrInvalidMonthKey
	}
	if m.CategoryID == "" {
		return ErrCategoryIDRequired
	}
	if m.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// MonthlyBudgetDetail is a monthly budget joined with its catalog category
type MonthlyBudgetDetail struct {
	ID           uint   `json:"id"`
	Month        string `json:"month"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	CategoryType string `json:"category_type"`
	Amount       int64  `json:"amount"`
}

// DefaultMonthlyBudgets returns the default amount per catalog category id
func DefaultMonthlyBudgets() map[string]int64 {
	return map[string]int64{
		"housing":        50656,
		"utilities":      17000,
		"communication":  11633,
		"insurance":      10350,
		"taxes":          25583,
		"food":           90000,
		"daily_goods":    20000,
		"transportation": 15000,
		"medical":        3000,
		"entertainment":  24000,
		"social":         10000,
		"clothing":       10000,
		"education":      39000,
		"special":        0,
	}
}

// DefaultMonthlyBudgetTotal is the sum of DefaultMonthlyBudgets
func DefaultMonthlyBudgetTotal() int64 {
	var total int64
	for _, amount := range DefaultMonthlyBudgets() {
		total += amount
	}
	return total
}
