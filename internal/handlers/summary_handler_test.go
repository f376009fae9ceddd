package handlers

import (
	"net/http"

	"household-budget/internal/models"
)

func (s *APIHandlerSuite) TestGetSummary_DefaultsToLegacy() {
	perDay := 1875.0
	s.summarySvc.EXPECT().CalculateSummary("", models.BudgetSourceLegacy).Return(&models.Summary{
		Month:         "2025-01",
		Source:        models.BudgetSourceLegacy,
		TotalBudget:   70000,
		TotalSpent:    40000,
		Remaining:     30000,
		RemainingDays: 16,
		PerDayBudget:  &perDay,
		UsageRate:     57.14,
		Status:        models.BudgetStatusOK,
		StatusMessage: "予算内で順調です",
		StatusColor:   "green",
	}, nil)

	rec := s.do(http.MethodGet, "/api/summary", nil)

	s.Equal(http.StatusOK, rec.Code)
	var summary models.Summary
	s.decodeData(rec, &summary)
	s.Equal(models.BudgetStatusOK, summary.Status)
	s.Equal(16, summary.RemainingDays)
	s.Require().NotNil(summary.PerDayBudget)
	s.InDelta(1875.0, *summary.PerDayBudget, 0.001)
}

func (s *APIHandlerSuite) TestGetSummary_LinkedSource() {
	s.summarySvc.EXPECT().CalculateSummary("2025-03", models.BudgetSourceLinked).
		Return(&models.Summary{Month: "2025-03", Source: models.BudgetSourceLinked}, nil)

	rec := s.do(http.MethodGet, "/api/summary?month=2025-03&source=linked", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *APIHandlerSuite) TestGetSummary_InvalidInput() {
	testCases := []struct {
		name string
		path string
		code string
	}{
		{"bad month", "/api/summary?month=2025-13", "VALIDATION_005"},
		{"bad source", "/api/summary?source=both", "VALIDATION_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodGet, tc.path, nil)
			s.assertError(rec, http.StatusUnprocessableEntity, tc.code)
		})
	}
}
