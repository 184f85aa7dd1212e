package errors

import (
	"net/http"

	"cartsync/internal/errors"
)

// AppError defines the interface for application-specific errors.
// Message is the only part that may reach a response body; Details stays in logs.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Caller-safe error message
	Details() string   // Detailed error information (optional, server-side only)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the caller-safe error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are deliberately generic: the caller can
// distinguish the kinds by text but never sees internal diagnostic detail.
var (
	ErrInvalidSessionID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SESSION_ID",
		"Invalid session identifier",
		"",
	)

	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"Invalid user identifier",
		"",
	)

	ErrMissingIdentity = NewBaseError(
		http.StatusBadRequest,
		"MISSING_IDENTITY",
		"A session or user identifier is required",
		"",
	)

	ErrInvalidCartPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CART_DATA",
		"Invalid cart data",
		"",
	)

	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreError represents a backing-store failure, implementing the AppError
// interface. The underlying error is preserved for logs and unwrapping but is
// never surfaced to the caller.
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error.
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "cart store operation failed").Error()
}

// Unwrap exposes the underlying store error to errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILURE"
}

// Message returns the caller-safe error message.
func (e *StoreError) Message() string {
	return "Unable to access cart storage"
}

// Details returns detailed error information.
func (e *StoreError) Details() string {
	return e.details
}
