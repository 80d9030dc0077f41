// Package apperror carries client-facing failures from services to handlers.
package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error with the HTTP status and message shown to the client
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes why one request field was rejected
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrInternalServer     = New(http.StatusInternalServerError, "Internal server error")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password")
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token")
	ErrStorageUnavailable = New(http.StatusServiceUnavailable, "Image storage is not configured")
)

// New creates an error reported with the given status code
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidationError reports 422 with one entry per rejected field
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError reports 404 as "<resource> not found"
func NewNotFoundError(resource string) *AppError {
	return New(http.StatusNotFound, resource+" not found")
}

func NewConflictError(message string) *AppError {
	return New(http.StatusConflict, message)
}

func NewBadRequestError(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// IsAppError reports whether err or anything it wraps is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError finds the AppError in err's chain. Anything else becomes
// ErrInternalServer so infrastructure details never reach the client.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer
}
