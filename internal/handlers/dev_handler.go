package handlers

import (
	"log/slog"
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// RegisterRoutes mounts it only when Handlers.Dev is set.
type DevHandler struct {
	expenseService services.ExpenseServiceInterface
	generator      services.SampleExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	expenseService services.ExpenseServiceInterface,
	generator services.SampleExpenseGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		expenseService: expenseService,
		generator:      generator,
	}
}

// GenerateSampleExpenses fills a month with plausible expenses
//
// Method: POST /api/dev/sample-expenses?month=YYYY-MM&count=60
// Environment: Development only
//
// Query parameters:
//   - month: required
//   - count: number of expenses (default: 60, max: 500)
//
// Success Response: 201 Created
//   - month, created, failed
func (h *DevHandler) GenerateSampleExpenses(c echo.Context) error {
	var query dto.GenerateSampleExpensesQuery
	if err := bindQueryAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	inputs, err := h.generator.GenerateMonth(query.Month, query.Count)
	if err != nil {
		return handleServiceError(c, err)
	}

	resp := dto.GenerateSampleExpensesResponse{Month: query.Month}
	for _, input := range inputs {
		if _, err := h.expenseService.RecordExpense(input); err != nil {
			slog.Warn("Failed to store sample expense",
				"date", input.Date,
				"category", input.Category,
				"error", err,
			)
			resp.Failed++
			continue
		}
		resp.Created++
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: resp})
}
