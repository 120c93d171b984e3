package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a classified application error with a code and message
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

// NotFound builds an entity-not-found error carrying the entity name and id
func NotFound(entity, id string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %q was not found", entity, id),
	}
}

// AlreadyExists builds a conflict error for duplicate entities within an aggregate
func AlreadyExists(entity, key string) *DomainError {
	return &DomainError{
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf("%s %q already exists", entity, key),
	}
}

// Validation builds a request validation error
func Validation(message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
	}
}

// Error codes
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeInternal      = "INTERNAL_ERROR"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
)

// Predefined domain errors
var (
	// Identity errors
	ErrUserNotFound        = NewDomainError(CodeNotFound, "user not found")
	ErrRoleNotFound        = NewDomainError(CodeNotFound, "role not found")
	ErrEmailExists         = NewDomainError(CodeAlreadyExists, "email already exists")
	ErrRoleExists          = NewDomainError(CodeAlreadyExists, "role already exists")
	ErrInvalidCredentials  = NewDomainError(CodeUnauthorized, "invalid credentials")
	ErrUserBlocked         = NewDomainError(CodeUnauthorized, "user is blocked")
	ErrEmailNotConfirmed   = NewDomainError(CodeUnauthorized, "email is not confirmed")
	ErrUnauthorized        = NewDomainError(CodeUnauthorized, "unauthorized")
	ErrForbidden           = NewDomainError(CodeForbidden, "insufficient permissions")
	ErrInvalidToken        = NewDomainError(CodeUnauthorized, "invalid or expired token")
	ErrInvalidRefreshToken = NewDomainError(CodeUnauthorized, "invalid refresh token")
	ErrRefreshTokenExpired = NewDomainError(CodeUnauthorized, "refresh token has expired")
	ErrPasswordMismatch    = NewDomainError(CodeValidation, "new password and confirmation do not match")
	ErrIncorrectPassword   = NewDomainError(CodeUnauthorized, "current password is incorrect")

	// System errors
	ErrInternal           = NewDomainError(CodeInternal, "internal server error")
	ErrServiceUnavailable = NewDomainError(CodeUnavailable, "service unavailable")
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
// This should only be used in the handler layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case CodeValidation:
			return http.StatusBadRequest
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeForbidden:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeUnavailable:
			return http.StatusServiceUnavailable
		}
	}

	return http.StatusInternalServerError
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
