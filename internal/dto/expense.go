package dto

// RecordExpenseRequest is the body of POST /expenses. An omitted date means
// today in the server's timezone.
type RecordExpenseRequest struct {
	Date     string  `json:"date" validate:"omitempty,calendar_date"`
	Category string  `json:"category" validate:"required,category_key"`
	Amount   *int64  `json:"amount" validate:"required,gte=0"`
	Memo     *string `json:"memo"`
}

// ListExpensesQuery filters GET /expenses
type ListExpensesQuery struct {
	Month    string `query:"month" validate:"omitempty,month_key"`
	Category string `query:"category" validate:"omitempty,category_key"`
}

// GenerateSampleExpensesQuery drives POST /dev/sample-expenses
type GenerateSampleExpensesQuery struct {
	Month string `query:"month" validate:"required,month_key"`
	Count int    `query:"count" validate:"gte=0,lte=500"`
}

// GenerateSampleExpensesResponse reports how many generated rows were stored
type GenerateSampleExpensesResponse struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
	Failed  int    `json:"failed"`
}
