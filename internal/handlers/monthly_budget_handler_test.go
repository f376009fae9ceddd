package handlers

import (
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/models"
	"household-budget/internal/services"
)

func (s *APIHandlerSuite) TestUpsertMonthlyBudget_Created() {
	s.monthlyBudgetSvc.EXPECT().UpsertMonthlyBudget("2025-01", "food", int64(45000)).
		Return(&models.MonthlyBudget{ID: 4, Month: "2025-01", CategoryID: "food", Amount: 45000}, nil)

	rec := s.do(http.MethodPost, "/api/monthly-budgets", map[string]interface{}{
		"month": "2025-01", "category_id": "food", "amount": 45000,
	})

	s.Equal(http.StatusCreated, rec.Code)
	var monthlyBudget models.MonthlyBudget
	s.decodeData(rec, &monthlyBudget)
	s.Equal("food", monthlyBudget.CategoryID)
}

func (s *APIHandlerSuite) TestUpsertMonthlyBudget_UnknownCategory() {
	s.monthlyBudgetSvc.EXPECT().UpsertMonthlyBudget("2025-01", "pets", int64(1000)).
		Return(nil, services.ErrUnknownCategory)

	rec := s.do(http.MethodPost, "/api/monthly-budgets", map[string]interface{}{
		"month": "2025-01", "category_id": "pets", "amount": 1000,
	})

	s.assertError(rec, http.StatusUnprocessableEntity, "BUDGET_003")
}

func (s *APIHandlerSuite) TestUpsertMonthlyBudget_MissingCategoryID() {
	rec := s.do(http.MethodPost, "/api/monthly-budgets", map[string]interface{}{
		"month": "2025-01", "amount": 1000,
	})

	response := s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_002")
	s.Equal([]string{"category_id: is required"}, response.Error.Details)
}

func (s *APIHandlerSuite) TestListMonthlyBudgets() {
	s.monthlyBudgetSvc.EXPECT().ListMonthlyBudgets("2025-01", "fixed").Return([]models.MonthlyBudgetDetail{
		{ID: 1, Month: "2025-01", CategoryID: "housing", CategoryName: "住居費", CategoryType: "fixed", Amount: 80000},
	}, nil)

	rec := s.do(http.MethodGet, "/api/monthly-budgets?month=2025-01&category_type=fixed", nil)

	s.Equal(http.StatusOK, rec.Code)
	var details []models.MonthlyBudgetDetail
	s.decodeData(rec, &details)
	s.Require().Len(details, 1)
	s.Equal("住居費", details[0].CategoryName)
}

func (s *APIHandlerSuite) TestListMonthlyBudgets_MonthRequired() {
	rec := s.do(http.MethodGet, "/api/monthly-budgets", nil)

	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_002")
}

func (s *APIHandlerSuite) TestListMonthlyBudgets_UnknownCategoryType() {
	rec := s.do(http.MethodGet, "/api/monthly-budgets?month=2025-01&category_type=luxury", nil)

	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_007")
}

func (s *APIHandlerSuite) TestGetMonthlyTotal() {
	s.monthlyBudgetSvc.EXPECT().TotalForMonth("2025-01").
		Return(&models.MonthlyBudgetTotal{Month: "2025-01", TotalBudget: models.DefaultMonthlyBudgetTotal()}, nil)

	rec := s.do(http.MethodGet, "/api/monthly-budgets/summary/2025-01", nil)

	s.Equal(http.StatusOK, rec.Code)
	var total models.MonthlyBudgetTotal
	s.decodeData(rec, &total)
	s.Equal(models.DefaultMonthlyBudgetTotal(), total.TotalBudget)
}

func (s *APIHandlerSuite) TestGetMonthlyTotal_BadMonth() {
	rec := s.do(http.MethodGet, "/api/monthly-budgets/summary/2025-00", nil)

	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_005")
}

func (s *APIHandlerSuite) TestGetMonthlyBudget_NotFound() {
	s.monthlyBudgetSvc.EXPECT().GetMonthlyBudget(uint(12)).Return(nil, services.ErrMonthlyBudgetNotFound)

	rec := s.do(http.MethodGet, "/api/monthly-budgets/12", nil)

	s.assertError(rec, http.StatusNotFound, "BUDGET_002")
}

func (s *APIHandlerSuite) TestDeleteMonthlyBudget() {
	s.monthlyBudgetSvc.EXPECT().DeleteMonthlyBudget(uint(12)).Return(nil)

	rec := s.do(http.MethodDelete, "/api/monthly-budgets/12", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("deleted", s.decodeMessage(rec))
}

func (s *APIHandlerSuite) TestSeedDefaultBudgets() {
	s.monthlyBudgetSvc.EXPECT().SeedDefaultBudgets("2025-02").Return(14, nil)

	rec := s.do(http.MethodPost, "/api/monthly-budgets/defaults/2025-02", nil)

	s.Equal(http.StatusOK, rec.Code)
	var response dto.SeedDefaultsResponse
	s.decodeData(rec, &response)
	s.Equal(dto.SeedDefaultsResponse{Month: "2025-02", Inserted: 14}, response)
}
