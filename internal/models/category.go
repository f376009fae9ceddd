package models

import (
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"
)

// Category types. The type column is not constrained in storage; it is
// validated on write.
const (
	CategoryTypeFixed     = "fixed"
	CategoryTypeVariable  = "variable"
	CategoryTypeLifestyle = "lifestyle"
	CategoryTypeEvent     = "event"
)

var (
	ErrInvalidCategoryID   = errors.New("category id must be 1-50 characters")
	ErrInvalidCategoryName = errors.New("category name must be 1-100 characters")
	ErrInvalidCategoryType = errors.New("invalid category type")
)

// Category is a stable, typed spending bucket from the catalog
type Category struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null;index:idx_categories_type" json:"type"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_categories_is_active" json:"is_active"`
	Note      *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// AllCategoryTypes returns every valid category type
func AllCategoryTypes() []string {
	return []string{
		CategoryTypeFixed,
		CategoryTypeVariable,
		CategoryTypeLifestyle,
		CategoryTypeEvent,
	}
}

// IsValidCategoryType checks if a category type string is valid
func IsValidCategoryType(categoryType string) bool {
	return slices.Contains(AllCategoryTypes(), categoryType)
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.ID == "" || len(c.ID) > 50 {
		return ErrInvalidCategoryID
	}
	if c.Name == "" || len([]rune(c.Name)) > 100 {
		return ErrInvalidCategoryName
	}
	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

func note(s string) *string {
	return &s
}

// DefaultCategories returns the built-in catalog seeded at startup
func DefaultCategories() []Category {
	return []Category{
		{ID: "housing", Name: "住居", Type: CategoryTypeFixed, IsActive: true, Note: note("住宅ローン・家賃")},
		{ID: "utilities", Name: "光熱費", Type: CategoryTypeFixed, IsActive: true, Note: note("電気・ガス・水道")},
		{ID: "communication", Name: "通信費", Type: CategoryTypeFixed, IsActive: true, Note: note("携帯・インターネット")},
		{ID: "insurance", Name: "保険", Type: CategoryTypeFixed, IsActive: true, Note: note("生命保険・損害保険")},
		{ID: "taxes", Name: "税金", Type: CategoryTypeFixed, IsActive: true, Note: note("所得税・住民税・固定資産税")},
		{ID: "food", Name: "食費", Type: CategoryTypeVariable, IsActive: true, Note: note("食材・外食")},
		{ID: "daily_goods", Name: "日用品", Type: CategoryTypeVariable, IsActive: true, Note: note("日用雑貨・消耗品")},
		{ID: "transportation", Name: "交通費", Type: CategoryTypeVariable, IsActive: true, Note: note("ガソリン・公共交通")},
		{ID: "medical", Name: "医療費", Type: CategoryTypeVariable, IsActive: true, Note: note("医療・薬")},
		{ID: "entertainment", Name: "娯楽・趣味", Type: CategoryTypeLifestyle, IsActive: true, Note: note("映画・本・ゲーム")},
		{ID: "social", Name: "交際費", Type: CategoryTypeLifestyle, IsActive: true, Note: note("飲み会・プレゼント")},
		{ID: "clothing", Name: "被服・美容", Type: CategoryTypeLifestyle, IsActive: true, Note: note("衣類・美容")},
		{ID: "education", Name: "教育", Type: CategoryTypeEvent, IsActive: true, Note: note("学費・教材")},
		{ID: "special", Name: "特別支出", Type: CategoryTypeEvent, IsActive: true, Note: note("旅行・家電・突発費")},
	}
}
