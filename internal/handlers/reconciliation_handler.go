package handlers

import (
	"net/http"

	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// ReconciliationHandler exposes on-demand sync between the two budget tables
type ReconciliationHandler struct {
	reconciliationService services.ReconciliationServiceInterface
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService services.ReconciliationServiceInterface) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// SyncLegacyToLinked copies every legacy budget whose category resolves into
// the linked table
//
// Method: POST /api/reconciliation/legacy-to-linked
//
// Success Response: 200 OK
//   - data: {total, synced, skipped}
func (h *ReconciliationHandler) SyncLegacyToLinked(c echo.Context) error {
	stats, err := h.reconciliationService.SyncAllLegacyToLinked()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// SyncLinkedToLegacy copies every linked budget into the legacy table under
// its category name
//
// Method: POST /api/reconciliation/linked-to-legacy
func (h *ReconciliationHandler) SyncLinkedToLegacy(c echo.Context) error {
	stats, err := h.reconciliationService.SyncAllLinkedToLegacy()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// Verify reports rows of either table whose category cannot be resolved
//
// Method: GET /api/reconciliation/verify
func (h *ReconciliationHandler) Verify(c echo.Context) error {
	report, err := h.reconciliationService.Verify()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
