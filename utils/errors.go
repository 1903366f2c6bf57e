package utils

import (
	"fmt"
	"net/http"
)

// AppError represents an application error carrying the HTTP status it
// should surface as. Internal detail (Err) never crosses the API boundary.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFoundError creates a 404 Not Found error (record absent or not owned
// by the caller)
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// ValidationError creates a 400 Bad Request error for malformed or
// duplicate input
func ValidationError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// ConfigurationError creates a 500 error for operator-fixable
// misconfiguration (missing gateway credential)
func ConfigurationError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// GatewayError creates a 400 error for a non-200 answer from the payment
// provider. The provider payload is kept internal.
func GatewayError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// GetAppError returns the AppError if the error is an AppError
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == http.StatusNotFound
	}
	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
