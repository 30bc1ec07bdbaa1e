package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldErrorMessage creates a human-readable message for one failed rule
func fieldErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " failed validation rule: " + e.Tag()
	}
}

// HandleValidationError translates a binding/validation error into a
// structured error detail with per-field problems
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]map[string]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, map[string]string{
				"field":   fieldError.Field(),
				"message": fieldErrorMessage(fieldError),
			})
		}
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid input data").WithDetails(fields)
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}
