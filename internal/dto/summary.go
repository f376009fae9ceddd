package dto

// SummaryQuery selects the month and budget source of GET /summary
type SummaryQuery struct {
	Month  string `query:"month" validate:"omitempty,month_key"`
	Source string `query:"source" validate:"omitempty,oneof=legacy linked"`
}

// ListCategoriesQuery filters GET /categories
type ListCategoriesQuery struct {
	Type string `query:"type" validate:"omitempty,category_type"`
}
