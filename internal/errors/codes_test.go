package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidMonth,
		ValidationInvalidDate,
		ValidationInvalidType,
		BudgetNotFound,
		MonthlyBudgetNotFound,
		BudgetUnknownCategory,
		ExpenseNotFound,
		CategoryNotFound,
		ResourceNotFound,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{ValidationGeneral, "Validation failed"},
		{ValidationInvalidMonth, "Month must be in YYYY-MM format with month 01-12"},
		{BudgetNotFound, "Budget not found"},
		{BudgetUnknownCategory, "Category does not exist in the catalog"},
		{ExpenseNotFound, "Expense not found"},
		{SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"VALIDATION_", "BUDGET_", "EXPENSE_", "CATEGORY_", "RESOURCE_", "SYSTEM_"}

	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
			}
		}
		s.True(matched, "Error code %s has no known prefix", code)
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		message := GetErrorMessage(code)
		s.NotEmpty(message)
		s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
	}
}
