package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNegativeAmount     = errors.New("amount must be greater than or equal to 0")
	ErrInvalidCategoryKey = errors.New("category must be 1-50 characters")
	ErrCategoryIDRequired = errors.New("category id is required")
)

// Budget is the legacy budget form keyed by a free-text category string
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Month     string    `gorm:"type:varchar(7);not null;uniqueIndex:uq_budgets_month_category;index:idx_budgets_month" json:"month"`
	Category  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_budgets_month_category;index:idx_budgets_category" json:"category"`
	Amount    int64     `gorm:"not null;check:amount >= 0" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if !IsValidMonthKey(b.Month) {
		return ErrInvalidMonthKey
	}
	if err := validateCategoryKey(b.Category); err != nil {
		return err
	}
	if b.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func validateCategoryKey(key string) error {
	n := len([]rune(key))
	if n < 1 || n > 50 {
		return ErrInvalidCategoryKey
	}
	return nil
}
