package handlers

import (
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// MonthlyBudgetHandler serves the catalog-linked monthly budgets
type MonthlyBudgetHandler struct {
	monthlyBudgetService services.MonthlyBudgetServiceInterface
}

// NewMonthlyBudgetHandler creates a new linked budget handler
func NewMonthlyBudgetHandler(monthlyBudgetService services.MonthlyBudgetServiceInterface) *MonthlyBudgetHandler {
	return &MonthlyBudgetHandler{monthlyBudgetService: monthlyBudgetService}
}

// UpsertMonthlyBudget creates or replaces the budget of a (month, category_id) pair
//
// Method: POST /api/monthly-budgets
//
// Request body:
//   - month: YYYY-MM
//   - category_id: id of a catalog entry
//   - amount: non-negative integer yen
//
// Success Response: 201 Created
//
// Error Responses:
//   - 422: VALIDATION_* malformed body
//   - 422: BUDGET_003 category_id not in the catalog
func (h *MonthlyBudgetHandler) UpsertMonthlyBudget(c echo.Context) error {
	var req dto.UpsertMonthlyBudgetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return sendRequestError(c, err)
	}

	monthlyBudget, err := h.monthlyBudgetService.UpsertMonthlyBudget(req.Month, req.CategoryID, *req.Amount)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: monthlyBudget})
}

// ListMonthlyBudgets lists a month's budgets joined with their category
//
// Method: GET /api/monthly-budgets?month=YYYY-MM&category_type=fixed
//
// Query parameters:
//   - month: required
//   - category_type: optional filter
func (h *MonthlyBudgetHandler) ListMonthlyBudgets(c echo.Context) error {
	var query dto.ListMonthlyBudgetsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	details, err := h.monthlyBudgetService.ListMonthlyBudgets(query.Month, query.CategoryType)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: details})
}

// GetMonthlyTotal returns the summed linked budget of a month
//
// Method: GET /api/monthly-budgets/summary/:month
func (h *MonthlyBudgetHandler) GetMonthlyTotal(c echo.Context) error {
	var path dto.MonthPath
	if err := bindAndValidate(c, &path); err != nil {
		return sendRequestError(c, err)
	}

	total, err := h.monthlyBudgetService.TotalForMonth(path.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: total})
}

// GetMonthlyBudget fetches one linked budget
//
// Method: GET /api/monthly-budgets/:id
func (h *MonthlyBudgetHandler) GetMonthlyBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	monthlyBudget, err := h.monthlyBudgetService.GetMonthlyBudget(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: monthlyBudget})
}

// DeleteMonthlyBudget removes one linked budget
//
// Method: DELETE /api/monthly-budgets/:id
func (h *MonthlyBudgetHandler) DeleteMonthlyBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.monthlyBudgetService.DeleteMonthlyBudget(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// SeedDefaultBudgets inserts the default budget set for a month. Rows that
// already exist are left untouched.
//
// Method: POST /api/monthly-budgets/defaults/:month
func (h *MonthlyBudgetHandler) SeedDefaultBudgets(c echo.Context) error {
	var path dto.MonthPath
	if err := bindAndValidate(c, &path); err != nil {
		return sendRequestError(c, err)
	}

	inserted, err := h.monthlyBudgetService.SeedDefaultBudgets(path.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SeedDefaultsResponse{Month: path.Month, Inserted: inserted},
	})
}
