package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"account disabled", ErrAccountDisabled, http.StatusUnauthorized},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"conflict", ErrConflict, http.StatusConflict},
		{"validation failed", ErrValidationFailed, http.StatusBadRequest},
		{"unexpected", ErrUnexpected, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTTPStatus(tt.err); got != tt.want {
				t.Errorf("ToHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrappedErrorKeepsStatus(t *testing.T) {
	wrapped := WrapError(ErrNotFound, gorm.ErrRecordNotFound)

	if got := ToHTTPStatus(wrapped); got != http.StatusNotFound {
		t.Errorf("ToHTTPStatus() = %d, want %d", got, http.StatusNotFound)
	}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped error should match its sentinel")
	}
	if !errors.Is(wrapped, gorm.ErrRecordNotFound) {
		t.Error("wrapped error should expose its cause")
	}
}

func TestGetErrorMessageHidesInternalDetail(t *testing.T) {
	internal := errors.New("pq: connection refused on 10.0.0.3")

	if got := GetErrorMessage(internal); got != ErrUnexpected.Message {
		t.Errorf("GetErrorMessage() leaked internal text: %q", got)
	}
	if got := GetErrorMessage(ErrForbidden); got != ErrForbidden.Message {
		t.Errorf("GetErrorMessage() = %q, want %q", got, ErrForbidden.Message)
	}
}

func TestTranslateStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *DomainError
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrConflict},
		{"pg unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, ErrConflict},
		{"pg other error", &pgconn.PgError{Code: "42P01"}, ErrUnexpected},
		{"plain error", errors.New("boom"), ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateStoreError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("TranslateStoreError() = %v, want sentinel %v", got, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("TranslateStoreError() lost the cause %v", tt.err)
			}
		})
	}

	if TranslateStoreError(nil) != nil {
		t.Error("nil should pass through")
	}
}
