package handlers

import (
	"strconv"

	apperrors "household-budget/internal/errors"

	"github.com/labstack/echo/v4"
)

// parseID reads the {id} path segment as a positive integer. On failure the
// 422 response has already been written and ok is false.
func parseID(c echo.Context) (id uint, ok bool, err error) {
	value, parseErr := strconv.ParseUint(c.Param("id"), 10, 64)
	if parseErr != nil || value == 0 {
		return 0, false, SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("id must be a positive integer"))
	}
	return uint(value), true, nil
}
