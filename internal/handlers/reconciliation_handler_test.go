package handlers

import (
	"errors"
	"net/http"

	"household-budget/internal/models"
)

func (s *APIHandlerSuite) TestSyncLegacyToLinked() {
	s.reconciliationSvc.EXPECT().SyncAllLegacyToLinked().Return(&models.SyncStats{Total: 3, Synced: 2, Skipped: 1}, nil)

	rec := s.do(http.MethodPost, "/api/reconciliation/legacy-to-linked", nil)

	s.Equal(http.StatusOK, rec.Code)
	var stats models.SyncStats
	s.decodeData(rec, &stats)
	s.Equal(models.SyncStats{Total: 3, Synced: 2, Skipped: 1}, stats)
}

func (s *APIHandlerSuite) TestSyncLinkedToLegacy_Failure() {
	s.reconciliationSvc.EXPECT().SyncAllLinkedToLegacy().Return(nil, errors.New("tx aborted"))

	rec := s.do(http.MethodPost, "/api/reconciliation/linked-to-legacy", nil)

	s.assertError(rec, http.StatusInternalServerError, "SYSTEM_001")
}

func (s *APIHandlerSuite) TestVerify() {
	s.reconciliationSvc.EXPECT().Verify().Return(&models.CompatibilityReport{
		BudgetRecords: 2,
		BudgetWithoutCategory: []models.UnresolvedBudget{
			{ID: 2, Month: "2025-01", Category: "ペット", Amount: 3000},
		},
		MonthlyBudgetWithoutCategory: []models.UnresolvedMonthlyBudget{},
		IsCompatible:                 false,
	}, nil)

	rec := s.do(http.MethodGet, "/api/reconciliation/verify", nil)

	s.Equal(http.StatusOK, rec.Code)
	var report models.CompatibilityReport
	s.decodeData(rec, &report)
	s.False(report.IsCompatible)
	s.Len(report.BudgetWithoutCategory, 1)
}
