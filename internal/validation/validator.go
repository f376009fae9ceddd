package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"household-budget/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with household-budget rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var instance *Validator

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_key", validateMonthKey)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("category_key", validateCategoryKey)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateMonthKey accepts YYYY-MM with a month of 01-12
func validateMonthKey(fl validator.FieldLevel) bool {
	return models.IsValidMonthKey(fl.Field().String())
}

// validateCalendarDate accepts YYYY-MM-DD that names a real day
func validateCalendarDate(fl validator.FieldLevel) bool {
	return models.IsValidDate(fl.Field().String())
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(fl.Field().String())
}

// validateCategoryKey counts characters, not bytes, so that 50 kanji still pass
func validateCategoryKey(fl validator.FieldLevel) bool {
	n := len([]rune(fl.Field().String()))
	return n >= 1 && n <= 50
}

// FormatErrors turns validator errors into "field: message" details.
// Any other error is returned as its own message.
func FormatErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), messageFor(fe)))
	}
	return details
}

// Tag returns the failing tag of the first field error, or "" for other errors
func Tag(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Tag()
	}
	return ""
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "month_key":
		return "must be in YYYY-MM format with month 01-12"
	case "calendar_date":
		return "must be a real date in YYYY-MM-DD format"
	case "category_type":
		return "must be one of " + strings.Join(models.AllCategoryTypes(), ", ")
	case "category_key":
		return "must be 1-50 characters"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
