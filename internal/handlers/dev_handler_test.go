package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"household-budget/internal/dto"
	"household-budget/internal/models"
	"household-budget/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
)

func (s *APIHandlerSuite) TestGenerateSampleExpenses() {
	memo := "スーパー"
	inputs := []services.RecordExpenseInput{
		{Date: "2025-01-03", Category: "food", Amount: 2480, Memo: &memo},
		{Date: "2025-01-05", Category: "food", Amount: 1200, Memo: &memo},
		{Date: "2025-01-27", Category: "housing", Amount: 90000, Memo: &memo},
	}
	s.generator.EXPECT().GenerateMonth("2025-01", 3).Return(inputs, nil)
	gomock.InOrder(
		s.expenseSvc.EXPECT().RecordExpense(inputs[0]).Return(&models.Expense{ID: 1}, nil),
		s.expenseSvc.EXPECT().RecordExpense(inputs[1]).Return(nil, errors.New("database is locked")),
		s.expenseSvc.EXPECT().RecordExpense(inputs[2]).Return(&models.Expense{ID: 2}, nil),
	)

	rec := s.do(http.MethodPost, "/api/dev/sample-expenses?month=2025-01&count=3", nil)

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.GenerateSampleExpensesResponse
	s.decodeData(rec, &resp)
	s.Equal(dto.GenerateSampleExpensesResponse{Month: "2025-01", Created: 2, Failed: 1}, resp)
}

func (s *APIHandlerSuite) TestGenerateSampleExpenses_DefaultCount() {
	s.generator.EXPECT().GenerateMonth("2025-02", 0).Return([]services.RecordExpenseInput{}, nil)

	rec := s.do(http.MethodPost, "/api/dev/sample-expenses?month=2025-02", nil)

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *APIHandlerSuite) TestGenerateSampleExpenses_Validation() {
	rec := s.do(http.MethodPost, "/api/dev/sample-expenses", nil)
	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_002")

	rec = s.do(http.MethodPost, "/api/dev/sample-expenses?month=2025-01&count=501", nil)
	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_004")

	rec = s.do(http.MethodPost, "/api/dev/sample-expenses?month=2025-01&count=many", nil)
	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_003")
}

func (s *APIHandlerSuite) TestDevRoutesAbsentWithoutHandler() {
	e := echo.New()
	RegisterRoutes(e, "/api", Handlers{
		Budget:         NewBudgetHandler(s.budgetSvc),
		MonthlyBudget:  NewMonthlyBudgetHandler(s.monthlyBudgetSvc),
		Expense:        NewExpenseHandler(s.expenseSvc, s.exportSvc),
		Category:       NewCategoryHandler(s.categorySvc),
		Summary:        NewSummaryHandler(s.summarySvc),
		Reconciliation: NewReconciliationHandler(s.reconciliationSvc),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/dev/sample-expenses?month=2025-01", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}
