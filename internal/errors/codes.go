package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidType   ErrorCode = "VALIDATION_007"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	MonthlyBudgetNotFound ErrorCode = "BUDGET_002"
	BudgetUnknownCategory ErrorCode = "BUDGET_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound ErrorCode = "EXPENSE_001"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Resource error codes (RESOURCE_*)
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidMonth:  "Month must be in YYYY-MM format with month 01-12",
	ValidationInvalidDate:   "Date must be a real calendar date in YYYY-MM-DD format",
	ValidationInvalidType:   "Category type must be one of fixed, variable, lifestyle, event",

	BudgetNotFound:        "Budget not found",
	MonthlyBudgetNotFound: "Monthly budget not found",
	BudgetUnknownCategory: "Category does not exist in the catalog",

	ExpenseNotFound: "Expense not found",

	CategoryNotFound: "Category not found",

	ResourceNotFound: "Resource not found",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
