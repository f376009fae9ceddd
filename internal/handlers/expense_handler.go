package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/models"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExpenseHandler serves the expense ledger
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	exportService  services.ExportServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	exportService services.ExportServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		exportService:  exportService,
	}
}

// RecordExpense stores a new expense
//
// Method: POST /api/expenses
//
// Request body:
//   - date: YYYY-MM-DD, optional (defaults to today)
//   - category: 1-50 characters
//   - amount: non-negative integer yen
//   - memo: optional
//
// Success Response: 201 Created
func (h *ExpenseHandler) RecordExpense(c echo.Context) error {
	var req dto.RecordExpenseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return sendRequestError(c, err)
	}

	expense, err := h.expenseService.RecordExpense(services.RecordExpenseInput{
		Date:     req.Date,
		Category: req.Category,
		Amount:   *req.Amount,
		Memo:     req.Memo,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: expense})
}

// ListExpenses lists expenses ordered by date, then by id
//
// Method: GET /api/expenses?month=YYYY-MM&category=食費
//
// Without any filter the list is empty.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	var query dto.ListExpensesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	expenses, err := h.expenseService.ListExpenses(models.ExpenseFilters{
		Month:    query.Month,
		Category: query.Category,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: expenses})
}

// GetExpense fetches one expense
//
// Method: GET /api/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: expense})
}

// DeleteExpense removes one expense
//
// Method: DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// GetStatistics maps each category to its total spending in a month
//
// Method: GET /api/expenses/statistics/:month
func (h *ExpenseHandler) GetStatistics(c echo.Context) error {
	var path dto.MonthPath
	if err := bindAndValidate(c, &path); err != nil {
		return sendRequestError(c, err)
	}

	stats, err := h.expenseService.Statistics(path.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// ExportExpenses downloads a month's expenses as an xlsx workbook
//
// Method: GET /api/expenses/export/:month
//
// The workbook is built fully in memory so that a failure still yields a
// JSON error instead of a truncated download.
func (h *ExpenseHandler) ExportExpenses(c echo.Context) error {
	var path dto.MonthPath
	if err := bindAndValidate(c, &path); err != nil {
		return sendRequestError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportMonth(path.Month, &buf); err != nil {
		return handleServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", h.exportService.FileName(path.Month)))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
