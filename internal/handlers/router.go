package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the API mounts
type Handlers struct {
	Health         *HealthCheckHandler
	Budget         *BudgetHandler
	MonthlyBudget  *MonthlyBudgetHandler
	Expense        *ExpenseHandler
	Category       *CategoryHandler
	Summary        *SummaryHandler
	Reconciliation *ReconciliationHandler
	Dev            *DevHandler
}

// RegisterRoutes mounts the API under prefix, plus /health and /metrics at the root
func RegisterRoutes(e *echo.Echo, prefix string, h Handlers) {
	if h.Health != nil {
		e.GET("/health", h.Health.HealthCheck)
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group(prefix)

	budgets := api.Group("/budgets")
	budgets.POST("", h.Budget.UpsertBudget)
	budgets.GET("", h.Budget.ListBudgets)
	budgets.GET("/:id", h.Budget.GetBudget)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	monthlyBudgets := api.Group("/monthly-budgets")
	monthlyBudgets.POST("", h.MonthlyBudget.UpsertMonthlyBudget)
	monthlyBudgets.GET("", h.MonthlyBudget.ListMonthlyBudgets)
	monthlyBudgets.GET("/summary/:month", h.MonthlyBudget.GetMonthlyTotal)
	monthlyBudgets.POST("/defaults/:month", h.MonthlyBudget.SeedDefaultBudgets)
	monthlyBudgets.GET("/:id", h.MonthlyBudget.GetMonthlyBudget)
	monthlyBudgets.DELETE("/:id", h.MonthlyBudget.DeleteMonthlyBudget)

	expenses := api.Group("/expenses")
	expenses.POST("", h.Expense.RecordExpense)
	expenses.GET("", h.Expense.ListExpenses)
	expenses.GET("/statistics/:month", h.Expense.GetStatistics)
	expenses.GET("/export/:month", h.Expense.ExportExpenses)
	expenses.GET("/:id", h.Expense.GetExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	categories := api.Group("/categories")
	categories.GET("", h.Category.ListCategories)
	categories.GET("/:id", h.Category.GetCategory)

	api.GET("/summary", h.Summary.GetSummary)

	reconciliation := api.Group("/reconciliation")
	reconciliation.POST("/legacy-to-linked", h.Reconciliation.SyncLegacyToLinked)
	reconciliation.POST("/linked-to-legacy", h.Reconciliation.SyncLinkedToLegacy)
	reconciliation.GET("/verify", h.Reconciliation.Verify)

	if h.Dev != nil {
		api.POST("/dev/sample-expenses", h.Dev.GenerateSampleExpenses)
	}
}
