package errors

import (
	"errors"
	"fmt"
)

// ErrorType is the category of an application error, used to pick the HTTP status and log level
type ErrorType string

const (
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeForbidden        ErrorType = "forbidden"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeExternal         ErrorType = "external"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newf(errorType ErrorType, format string, args ...any) error {
	return &AppError{Type: errorType, Message: fmt.Sprintf(format, args...)}
}

func wrap(errorType ErrorType, message string, err error) error {
	return &AppError{Type: errorType, Message: message, Err: err}
}

func NotFoundf(format string, args ...any) error {
	return newf(ErrorTypeNotFound, format, args...)
}

func Validation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func Validationf(format string, args ...any) error {
	return newf(ErrorTypeValidation, format, args...)
}

func WrapValidation(message string, err error) error {
	return wrap(ErrorTypeValidation, message, err)
}

func Conflictf(format string, args ...any) error {
	return newf(ErrorTypeConflict, format, args...)
}

func Unauthorized(message string) error {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &AppError{Type: ErrorTypeForbidden, Message: message}
}

func Forbiddenf(format string, args ...any) error {
	return newf(ErrorTypeForbidden, format, args...)
}

func WrapInternal(message string, err error) error {
	return wrap(ErrorTypeInternal, message, err)
}

func MethodNotAllowed(method string) error {
	return newf(ErrorTypeMethodNotAllowed, "method %s not allowed", method)
}

func RateLimited(message string) error {
	return &AppError{Type: ErrorTypeRateLimited, Message: message}
}

func External(message string) error {
	return &AppError{Type: ErrorTypeExternal, Message: message}
}

func WrapExternal(message string, err error) error {
	return wrap(ErrorTypeExternal, message, err)
}

// GetType returns the type of the outermost AppError in the chain, internal when there is none
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err carries an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	return err != nil && GetType(err) == errorType
}
