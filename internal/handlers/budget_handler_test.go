package handlers

import (
	"errors"
	"net/http"
	"strings"

	"household-budget/internal/models"
	"household-budget/internal/services"

	"github.com/golang/mock/gomock"
)

func (s *APIHandlerSuite) TestUpsertBudget_Created() {
	stored := &models.Budget{ID: 1, Month: "2025-01", Category: "食費", Amount: 50000}
	s.budgetSvc.EXPECT().UpsertBudget("2025-01", "食費", int64(50000)).Return(stored, nil)

	rec := s.do(http.MethodPost, "/api/budgets", map[string]interface{}{
		"month": "2025-01", "category": "食費", "amount": 50000,
	})

	s.Equal(http.StatusCreated, rec.Code)
	var budget models.Budget
	s.decodeData(rec, &budget)
	s.Equal(uint(1), budget.ID)
	s.Equal(int64(50000), budget.Amount)
}

func (s *APIHandlerSuite) TestUpsertBudget_ZeroAmountAllowed() {
	s.budgetSvc.EXPECT().UpsertBudget("2025-01", "旅行", int64(0)).
		Return(&models.Budget{ID: 2, Month: "2025-01", Category: "旅行"}, nil)

	rec := s.do(http.MethodPost, "/api/budgets", map[string]interface{}{
		"month": "2025-01", "category": "旅行", "amount": 0,
	})

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *APIHandlerSuite) TestUpsertBudget_ValidationFailures() {
	testCases := []struct {
		name    string
		body    interface{}
		code    string
		details []string
	}{
		{
			name:    "negative amount",
			body:    map[string]interface{}{"month": "2025-01", "category": "食費", "amount": -1},
			code:    "VALIDATION_004",
			details: []string{"amount: must be greater than or equal to 0"},
		},
		{
			name:    "missing amount",
			body:    map[string]interface{}{"month": "2025-01", "category": "食費"},
			code:    "VALIDATION_002",
			details: []string{"amount: is required"},
		},
		{
			name:    "month 13",
			body:    map[string]interface{}{"month": "2025-13", "category": "食費", "amount": 1},
			code:    "VALIDATION_005",
			details: []string{"month: must be in YYYY-MM format with month 01-12"},
		},
		{
			name:    "category too long",
			body:    map[string]interface{}{"month": "2025-01", "category": strings.Repeat("あ", 51), "amount": 1},
			code:    "VALIDATION_004",
			details: []string{"category: must be 1-50 characters"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/api/budgets", tc.body)

			response := s.assertError(rec, http.StatusUnprocessableEntity, tc.code)
			s.Equal(tc.details, response.Error.Details)
		})
	}
}

func (s *APIHandlerSuite) TestUpsertBudget_MalformedJSON() {
	rec := s.do(http.MethodPost, "/api/budgets", `{"month": "2025-01",`)

	response := s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_003")
	s.NotEmpty(response.Error.Details)
}

func (s *APIHandlerSuite) TestListBudgets_NoMonthIsEmpty() {
	s.budgetSvc.EXPECT().ListBudgets("").Return([]models.Budget{}, nil)

	rec := s.do(http.MethodGet, "/api/budgets", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data": []}`, rec.Body.String())
}

func (s *APIHandlerSuite) TestListBudgets_ByMonth() {
	s.budgetSvc.EXPECT().ListBudgets("2025-01").Return([]models.Budget{
		{ID: 1, Month: "2025-01", Category: "住居費", Amount: 80000},
		{ID: 2, Month: "2025-01", Category: "食費", Amount: 50000},
	}, nil)

	rec := s.do(http.MethodGet, "/api/budgets?month=2025-01", nil)

	s.Equal(http.StatusOK, rec.Code)
	var budgets []models.Budget
	s.decodeData(rec, &budgets)
	s.Len(budgets, 2)
}

func (s *APIHandlerSuite) TestListBudgets_MalformedMonth() {
	rec := s.do(http.MethodGet, "/api/budgets?month=2025-1", nil)

	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_005")
}

func (s *APIHandlerSuite) TestGetBudget() {
	s.budgetSvc.EXPECT().GetBudget(uint(7)).Return(&models.Budget{ID: 7, Month: "2025-01", Category: "食費"}, nil)

	rec := s.do(http.MethodGet, "/api/budgets/7", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *APIHandlerSuite) TestGetBudget_NotFound() {
	s.budgetSvc.EXPECT().GetBudget(uint(9)).Return(nil, services.ErrBudgetNotFound)

	rec := s.do(http.MethodGet, "/api/budgets/9", nil)

	s.assertError(rec, http.StatusNotFound, "BUDGET_001")
}

func (s *APIHandlerSuite) TestGetBudget_BadID() {
	for _, id := range []string{"abc", "0", "-3"} {
		s.Run(id, func() {
			rec := s.do(http.MethodGet, "/api/budgets/"+id, nil)
			s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_003")
		})
	}
}

func (s *APIHandlerSuite) TestDeleteBudget() {
	s.budgetSvc.EXPECT().DeleteBudget(uint(3)).Return(nil)

	rec := s.do(http.MethodDelete, "/api/budgets/3", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("deleted", s.decodeMessage(rec))
}

func (s *APIHandlerSuite) TestDeleteBudget_NotFound() {
	s.budgetSvc.EXPECT().DeleteBudget(uint(3)).Return(services.ErrBudgetNotFound)

	rec := s.do(http.MethodDelete, "/api/budgets/3", nil)

	s.assertError(rec, http.StatusNotFound, "BUDGET_001")
}

func (s *APIHandlerSuite) TestUpsertBudget_StorageErrorIsHidden() {
	s.budgetSvc.EXPECT().UpsertBudget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("sqlite3: disk I/O error"))

	rec := s.do(http.MethodPost, "/api/budgets", map[string]interface{}{
		"month": "2025-01", "category": "食費", "amount": 1,
	})

	s.assertError(rec, http.StatusInternalServerError, "SYSTEM_001")
	s.NotContains(rec.Body.String(), "sqlite3")
}
