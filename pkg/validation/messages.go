package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level violation in a validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DefaultMessage renders a human-readable message for a validator tag
func DefaultMessage(field, tag, param string) string {
	field = strings.ToLower(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s characters or items", field, param)
	case "max":
		return fmt.Sprintf("%s must have at most %s characters or items", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date/time in format %s", field, param)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "alphanum":
		return fmt.Sprintf("%s must contain only letters and digits", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}

// FormatBindingError converts a binding error into one entry per field
// violation. Every violation is reported, never just the first.
func FormatBindingError(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: DefaultMessage(fe.Field(), fe.Tag(), fe.Param()),
			})
		}
		return out
	}

	// Malformed JSON and type mismatches have no field breakdown
	return []FieldError{{
		Field:   "body",
		Message: "request body is not valid",
	}}
}
