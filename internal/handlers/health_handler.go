package handlers

import (
	"net/http"
	"time"

	apperrors "household-budget/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, now: time.Now}
}

// HealthCheck reports liveness and database connectivity
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "ok"
//   - time: RFC 3339 UTC timestamp
//
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, apperrors.SystemServiceUnavailable, apperrors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   h.now().UTC().Format(time.RFC3339),
	})
}
