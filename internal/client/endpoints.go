package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"household-budget/internal/dto"
	"household-budget/internal/models"
)

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// Health checks that the backend and its database are up
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := jsonUnmarshal(raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Budgets

func (c *Client) UpsertBudget(ctx context.Context, month, category string, amount int64) (*models.Budget, error) {
	var budget models.Budget
	req := dto.UpsertBudgetRequest{Month: month, Category: category, Amount: &amount}
	if err := c.getJSON(ctx, http.MethodPost, "/api/budgets", nil, req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) ListBudgets(ctx context.Context, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.getJSON(ctx, http.MethodGet, "/api/budgets", optional("month", month), nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) GetBudget(ctx context.Context, id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := c.getJSON(ctx, http.MethodGet, fmt.Sprintf("/api/budgets/%d", id), nil, nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id uint) error {
	return c.getJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/budgets/%d", id), nil, nil, nil)
}

// Monthly budgets

func (c *Client) UpsertMonthlyBudget(ctx context.Context, month, categoryID string, amount int64) (*models.MonthlyBudget, error) {
	var monthlyBudget models.MonthlyBudget
	req := dto.UpsertMonthlyBudgetRequest{Month: month, CategoryID: categoryID, Amount: &amount}
	if err := c.getJSON(ctx, http.MethodPost, "/api/monthly-budgets", nil, req, &monthlyBudget); err != nil {
		return nil, err
	}
	return &monthlyBudget, nil
}

func (c *Client) ListMonthlyBudgets(ctx context.Context, month, categoryType string) ([]models.MonthlyBudgetDetail, error) {
	query := url.Values{"month": {month}}
	if categoryType != "" {
		query.Set("category_type", categoryType)
	}

	var details []models.MonthlyBudgetDetail
	if err := c.getJSON(ctx, http.MethodGet, "/api/monthly-budgets", query, nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) MonthlyBudgetTotal(ctx context.Context, month string) (*models.MonthlyBudgetTotal, error) {
	var total models.MonthlyBudgetTotal
	if err := c.getJSON(ctx, http.MethodGet, "/api/monthly-budgets/summary/"+url.PathEscape(month), nil, nil, &total); err != nil {
		return nil, err
	}
	return &total, nil
}

func (c *Client) DeleteMonthlyBudget(ctx context.Context, id uint) error {
	return c.getJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/monthly-budgets/%d", id), nil, nil, nil)
}

func (c *Client) SeedDefaultBudgets(ctx context.Context, month string) (*dto.SeedDefaultsResponse, error) {
	var resp dto.SeedDefaultsResponse
	if err := c.getJSON(ctx, http.MethodPost, "/api/monthly-budgets/defaults/"+url.PathEscape(month), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Expenses

func (c *Client) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	if err := c.getJSON(ctx, http.MethodPost, "/api/expenses", nil, req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) ListExpenses(ctx context.Context, month, category string) ([]models.Expense, error) {
	query := optional("month", month)
	if category != "" {
		query.Set("category", category)
	}

	var expenses []models.Expense
	if err := c.getJSON(ctx, http.MethodGet, "/api/expenses", query, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *Client) GetExpense(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := c.getJSON(ctx, http.MethodGet, fmt.Sprintf("/api/expenses/%d", id), nil, nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id uint) error {
	return c.getJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil, nil, nil)
}

func (c *Client) ExpenseStatistics(ctx context.Context, month string) (map[string]int64, error) {
	stats := map[string]int64{}
	if err := c.getJSON(ctx, http.MethodGet, "/api/expenses/statistics/"+url.PathEscape(month), nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ExportExpenses copies the month's xlsx workbook into w
func (c *Client) ExportExpenses(ctx context.Context, month string, w io.Writer) error {
	raw, err := c.do(ctx, http.MethodGet, "/api/expenses/export/"+url.PathEscape(month), nil, nil)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return newRequestError(fmt.Errorf("write workbook: %w", err))
	}
	return nil
}

// GenerateSampleExpenses asks a development server to fill month with sample data.
// A zero count leaves the server default.
func (c *Client) GenerateSampleExpenses(ctx context.Context, month string, count int) (*dto.GenerateSampleExpensesResponse, error) {
	query := url.Values{"month": {month}}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}

	var resp dto.GenerateSampleExpensesResponse
	if err := c.getJSON(ctx, http.MethodPost, "/api/dev/sample-expenses", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories

func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, http.MethodGet, "/api/categories", optional("type", categoryType), nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := c.getJSON(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Summary returns the computed summary. Empty month means the server's current month.
func (c *Client) Summary(ctx context.Context, month string, source models.BudgetSource) (*models.Summary, error) {
	query := optional("month", month)
	if source != "" {
		query.Set("source", string(source))
	}

	var summary models.Summary
	if err := c.getJSON(ctx, http.MethodGet, "/api/summary", query, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Reconciliation

func (c *Client) SyncLegacyToLinked(ctx context.Context) (*models.SyncStats, error) {
	var stats models.SyncStats
	if err := c.getJSON(ctx, http.MethodPost, "/api/reconciliation/legacy-to-linked", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SyncLinkedToLegacy(ctx context.Context) (*models.SyncStats, error) {
	var stats models.SyncStats
	if err := c.getJSON(ctx, http.MethodPost, "/api/reconciliation/linked-to-legacy", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Verify(ctx context.Context) (*models.CompatibilityReport, error) {
	var report models.CompatibilityReport
	if err := c.getJSON(ctx, http.MethodGet, "/api/reconciliation/verify", nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func optional(key, value string) url.Values {
	query := url.Values{}
	if value != "" {
		query.Set(key, value)
	}
	return query
}
