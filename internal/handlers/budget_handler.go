package handlers

import (
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves the legacy free-text category budgets
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new legacy budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudget creates or replaces the budget of a (month, category) pair
//
// Method: POST /api/budgets
//
// Request body:
//   - month: YYYY-MM
//   - category: 1-50 characters
//   - amount: non-negative integer yen
//
// Success Response: 201 Created
//   - data: the stored budget
//
// Error Responses:
//   - 422: VALIDATION_* malformed body
//   - 500: Internal server error
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	var req dto.UpsertBudgetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return sendRequestError(c, err)
	}

	budget, err := h.budgetService.UpsertBudget(req.Month, req.Category, *req.Amount)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: budget})
}

// ListBudgets lists the budgets of a month. Without a month the list is empty.
//
// Method: GET /api/budgets?month=YYYY-MM
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	var query dto.ListBudgetsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	budgets, err := h.budgetService.ListBudgets(query.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: budgets})
}

// GetBudget fetches one budget
//
// Method: GET /api/budgets/:id
//
// Error Responses:
//   - 404: BUDGET_001
//   - 422: id is not a positive integer
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	budget, err := h.budgetService.GetBudget(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: budget})
}

// DeleteBudget removes one budget
//
// Method: DELETE /api/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
