package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// Configuration creates a new AppError for invalid construction arguments.
func Configuration(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeConfigurationInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
	}
}

// DuplicateRegistration creates a new AppError for a task id registered
// while already pending.
func DuplicateRegistration(id string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateRegistration,
		Message: fmt.Sprintf("task %q is already pending", id),
		Details: map[string]any{"task_id": id},
	}
}

// BarrierClosed creates a new AppError for a registration after ready.
func BarrierClosed(id string) *AppError {
	return &AppError{
		Code:    ErrCodeBarrierClosed,
		Message: fmt.Sprintf("cannot register task %q: barrier already ready", id),
		Details: map[string]any{"task_id": id},
	}
}

// LoadFailed creates a new AppError for a hook that failed during
// synchronous execution.
func LoadFailed(unitPath, kind string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeLoadFailed,
		Message: fmt.Sprintf("hook for unit %q (kind %s) failed", unitPath, kind),
		Details: map[string]any{"unit": unitPath, "kind": kind},
		Cause:   cause,
	}
}

// AsyncFailure creates a new AppError for a failure that escaped its
// originating hook.
func AsyncFailure(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeAsyncFailure,
		Message: "unhandled asynchronous failure",
		Cause:   cause,
	}
}

// --- Helpers ---

// Normalize converts an arbitrary recovered value into an error. Errors
// pass through unchanged; anything else is wrapped with its printed form.
func Normalize(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case error:
		return x
	default:
		return fmt.Errorf("%v", x)
	}
}

// CodeOf returns the ErrorCode of err if it is (or wraps) an AppError,
// or ErrCodeInternal otherwise.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is (or wraps) an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// As wraps the stdlib errors.As for callers that alias this package.
func As(err error, target any) bool { return errors.As(err, target) }

// Is wraps the stdlib errors.Is for callers that alias this package.
func Is(err, target error) bool { return errors.Is(err, target) }
