package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches by code so wrapped copies compare equal to their sentinel
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Authentication errors. Invalid credentials deliberately covers both
	// "no such user" and "wrong password" so registered emails cannot be probed.
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid credentials")
	ErrAccountDisabled    = NewDomainError("ACCOUNT_DISABLED", "account is disabled")
	ErrUnauthenticated    = NewDomainError("UNAUTHENTICATED", "missing or invalid token")
	ErrForbidden          = NewDomainError("FORBIDDEN", "insufficient role for this operation")

	// Resource errors
	ErrNotFound = NewDomainError("NOT_FOUND", "resource not found")
	ErrConflict = NewDomainError("CONFLICT", "resource already exists")

	// Validation errors
	ErrValidationFailed = NewDomainError("VALIDATION_FAILED", "validation failed")

	// System errors
	ErrUnexpected = NewDomainError("UNEXPECTED", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "VALIDATION_FAILED":
		return http.StatusBadRequest

	// 401 Unauthorized. A disabled account is an authentication failure,
	// not an authorization one: the account cannot authenticate at all.
	case "INVALID_CREDENTIALS", "ACCOUNT_DISABLED", "UNAUTHENTICATED":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN":
		return http.StatusForbidden

	// 404 Not Found
	case "NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "CONFLICT":
		return http.StatusConflict

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts the outward-facing error message.
// Unexpected errors never leak their internal text.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return ErrUnexpected.Message
}
