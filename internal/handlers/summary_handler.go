package handlers

import (
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/models"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the computed monthly summary
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary computes budget, spending and status for a month
//
// Method: GET /api/summary?month=YYYY-MM&source=legacy
//
// Query parameters:
//   - month: optional, defaults to the current month in the server timezone
//   - source: legacy (default) or linked
//
// Success Response: 200 OK
//   - data: month, source, total_budget, total_spent, remaining,
//     remaining_days, per_day_budget, usage_rate, status,
//     status_message, status_color
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	var query dto.SummaryQuery
	if err := bindAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	source, err := models.ParseBudgetSource(query.Source)
	if err != nil {
		return handleServiceError(c, err)
	}

	summary, err := h.summaryService.CalculateSummary(query.Month, source)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}
