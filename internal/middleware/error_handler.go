package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"household-budget/internal/errors"
	"household-budget/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is the echo error handler. It renders every error as
// the standard error envelope and counts it in api_errors_total.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case stderrors.As(err, &echoErr):
		errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
		errorResponse = errors.NewErrorResponse(
			errorCode,
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &validationErrs):
		errorResponse = errors.NewErrorResponse(
			ValidationCodeForTag(validation.Tag(validationErrs)),
			traceID,
			errors.WithDetails(validation.FormatErrors(validationErrs)...),
		)
		httpStatus = http.StatusUnprocessableEntity
	default:
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if errorResponse.IsServerError() || httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	RecordAPIError(c, errorResponse.Error.Code, httpStatus)

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// RecordAPIError counts an error response that a handler rendered itself
func RecordAPIError(c echo.Context, code string, status int) {
	endpoint := c.Path()
	if endpoint == "" {
		endpoint = "unmatched"
	}
	apiErrorsTotal.WithLabelValues(code, endpoint, fmt.Sprintf("%d", status)).Inc()
}

// ValidationCodeForTag picks the most specific validation code for a failing tag
func ValidationCodeForTag(tag string) errors.ErrorCode {
	switch tag {
	case "required":
		return errors.ValidationRequiredField
	case "month_key":
		return errors.ValidationInvalidMonth
	case "calendar_date":
		return errors.ValidationInvalidDate
	case "category_type":
		return errors.ValidationInvalidType
	case "gte", "lte", "min", "max", "category_key":
		return errors.ValidationOutOfRange
	default:
		return errors.ValidationGeneral
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusMethodNotAllowed,
		http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.ResourceNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
