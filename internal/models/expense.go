package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a single recorded spending event
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_expenses_date" json:"date"`
	Month     string    `gorm:"type:varchar(7);not null;index:idx_expenses_month" json:"month"`
	Category  string    `gorm:"type:varchar(50);not null;index:idx_expenses_category" json:"category"`
	Amount    int64     `gorm:"not null;check:amount >= 0" json:"amount"`
	Memo      *string   `gorm:"type:text" json:"memo"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate derives the month key from the date and validates the row
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	month, err := MonthKeyFromDate(e.Date)
	if err != nil {
		return err
	}
	e.Month = month

	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if !IsValidDate(e.Date) {
		return ErrInvalidDate
	}
	if e.Month != e.Date[:7] {
		return ErrInvalidMonthKey
	}
	if err := validateCategoryKey(e.Category); err != nil {
		return err
	}
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// ExpenseFilters holds the optional list filters for expenses
type ExpenseFilters struct {
	Month    string
	Category string
}

// IsEmpty reports whether no filter was supplied
func (f ExpenseFilters) IsEmpty() bool {
	return f.Month == "" && f.Category == ""
}

// CategoryTotal is the summed expense amount for one category
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}
