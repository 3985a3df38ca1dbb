// Package validator checks request DTOs before they reach the
// repository layer, which itself stays tolerant of anything it is
// handed. It also owns department-name normalization so that scoping
// never has to compare raw user input.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate returns nil when the struct passes, otherwise the full list
// of field errors.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs = append(errs, ValidationError{
			Field:   fieldErr.Field(),
			Message: message(fieldErr),
			Rule:    fieldErr.Tag(),
		})
	}
	return errs
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", err.Param())
	}
	return fmt.Sprintf("failed %s validation", err.Tag())
}

// NormalizeDepartment trims and collapses internal whitespace so that
// " Computer  Science " and "Computer Science" name the same
// department. Comparison stays case-sensitive after normalization.
func NormalizeDepartment(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
