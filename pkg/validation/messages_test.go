package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestFormatBindingErrorEnumeratesAllFields(t *testing.T) {
	v := validator.New()

	err := v.Struct(loginPayload{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fieldErrs := FormatBindingError(err)
	if len(fieldErrs) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(fieldErrs), fieldErrs)
	}

	seen := map[string]bool{}
	for _, fe := range fieldErrs {
		if fe.Message == "" {
			t.Errorf("field %s has empty message", fe.Field)
		}
		seen[fe.Field] = true
	}
	if !seen["email"] || !seen["password"] {
		t.Errorf("expected violations for email and password, got %v", fieldErrs)
	}
}

func TestFormatBindingErrorNonValidationError(t *testing.T) {
	fieldErrs := FormatBindingError(errors.New("unexpected EOF"))
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "body" {
		t.Fatalf("expected single body-level error, got %v", fieldErrs)
	}
}

func TestFormatBindingErrorNil(t *testing.T) {
	if got := FormatBindingError(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
