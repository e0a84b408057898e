// Package errors carries coded application errors across the service,
// adapter and command layers. Domain packages return plain sentinels from
// domain/core; this package classifies them at the boundary.
package errors

import (
	stderrors "errors"
	"fmt"

	"fleetcalc/domain/core"
)

// Error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeRenderError     = "RENDER_ERROR"

	codeUnknown = "UNKNOWN"
)

// AppError is an error tagged with a code the outer layers switch on.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another AppError by code, so callers can test
// errors.Is(err, NotFound("")).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates an AppError without a cause.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// classify picks the code an uncoded error should carry.
func classify(err error) string {
	var appErr *AppError
	switch {
	case stderrors.As(err, &appErr):
		return appErr.Code
	case core.IsScenarioError(err):
		return CodeValidationError
	default:
		return CodeInternalError
	}
}

// Wrap adds context to err. The code of the innermost AppError survives;
// scenario validation failures become VALIDATION_ERROR and anything else
// INTERNAL_ERROR.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: classify(err), Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode recodes err, dropping one AppError layer if err already is one.
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: code, Message: appErr.Message, Cause: appErr.Cause}
	}
	return &AppError{Code: code, Message: err.Error(), Cause: err}
}

// IsAppError reports whether err carries a code.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the outermost code in err, or "UNKNOWN".
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return codeUnknown
}

func ConfigInvalid(message string) *AppError   { return New(CodeConfigInvalid, message) }
func ValidationError(message string) *AppError { return New(CodeValidationError, message) }
func InternalError(message string) *AppError   { return New(CodeInternalError, message) }
func InvalidInput(message string) *AppError    { return New(CodeInvalidInput, message) }

// NotFound reports a missing resource.
func NotFound(resource string) *AppError {
	return New(CodeNotFound, resource+" not found")
}

// RenderError reports a report that could not be encoded in format.
func RenderError(format string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderError,
		Message: fmt.Sprintf("failed to render %s report", format),
		Cause:   cause,
	}
}
