package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "household-budget/internal/errors"
	"household-budget/internal/middleware"
	"household-budget/internal/models"
	"household-budget/internal/repositories"
	"household-budget/internal/services"
	"household-budget/internal/validation"

	"github.com/labstack/echo/v4"
)

// Error responses always go through SendError (4xx) or SendSystemError (5xx).
// Handlers never build an error body by hand and never return a raw service
// error to echo, so that internal detail stays in the server log.

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apperrors.ErrorResponse

// SendError sends a standardized error response with the request's trace ID
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	errorResponse := apperrors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	status := errorResponse.GetHTTPStatus()
	middleware.RecordAPIError(c, errorResponse.Error.Code, status)
	return c.JSON(status, errorResponse)
}

// SendSystemError logs err and sends it without any internal detail:
// SYSTEM_002 when the store failed, SYSTEM_001 otherwise
func SendSystemError(c echo.Context, err error) error {
	traceID := middleware.GetTraceID(c)
	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	var errorResponse *apperrors.ErrorResponse
	var dbErr *repositories.DatabaseError
	if errors.As(err, &dbErr) {
		errorResponse, _ = apperrors.WrapDatabaseError(err, traceID)
	} else {
		errorResponse, _ = apperrors.WrapSystemError(err, traceID)
	}

	status := errorResponse.GetHTTPStatus()
	middleware.RecordAPIError(c, errorResponse.Error.Code, status)
	return c.JSON(status, errorResponse)
}

// SendValidationError renders a validator or binding error as a 422
func SendValidationError(c echo.Context, err error) error {
	return SendError(c,
		middleware.ValidationCodeForTag(validation.Tag(err)),
		apperrors.WithDetails(validation.FormatErrors(err)...),
	)
}

// bindAndValidate binds path, query and body into req and validates it.
// Echo binds query parameters only for GET, DELETE and HEAD.
func bindAndValidate(c echo.Context, req interface{}) error {
	return validateBound(c, req, c.Bind(req))
}

// bindQueryAndValidate binds only the query string, whatever the method
func bindQueryAndValidate(c echo.Context, req interface{}) error {
	binder := &echo.DefaultBinder{}
	return validateBound(c, req, binder.BindQueryParams(c, req))
}

func validateBound(c echo.Context, req interface{}, err error) error {
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return &bindError{message: formatBindError(httpErr)}
		}
		return &bindError{message: err.Error()}
	}
	return c.Validate(req)
}

type bindError struct {
	message string
}

func (e *bindError) Error() string {
	return e.message
}

func formatBindError(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}
	return http.StatusText(err.Code)
}

// sendRequestError renders the error of bindAndValidate
func sendRequestError(c echo.Context, err error) error {
	var be *bindError
	if errors.As(err, &be) {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails(be.message))
	}
	return SendValidationError(c, err)
}

// handleServiceError maps service and domain errors to API error codes
func handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidMonthKey):
		return SendError(c, apperrors.ValidationInvalidMonth, apperrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidDate):
		return SendError(c, apperrors.ValidationInvalidDate, apperrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidCategoryType):
		return SendError(c, apperrors.ValidationInvalidType)
	case errors.Is(err, models.ErrNegativeAmount), errors.Is(err, models.ErrInvalidCategoryKey):
		return SendError(c, apperrors.ValidationOutOfRange, apperrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrCategoryIDRequired):
		return SendError(c, apperrors.ValidationRequiredField, apperrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidBudgetSource):
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))

	case errors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, apperrors.BudgetNotFound)
	case errors.Is(err, services.ErrMonthlyBudgetNotFound):
		return SendError(c, apperrors.MonthlyBudgetNotFound)
	case errors.Is(err, services.ErrExpenseNotFound):
		return SendError(c, apperrors.ExpenseNotFound)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apperrors.CategoryNotFound)
	case errors.Is(err, services.ErrUnknownCategory):
		return SendError(c, apperrors.BudgetUnknownCategory)
	}

	return SendSystemError(c, err)
}
