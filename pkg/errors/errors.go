package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule document errors
	ErrRulesDirNotFound ErrorCode = "RULES_DIR_NOT_FOUND"
	ErrInvalidPattern   ErrorCode = "INVALID_PATTERN"
	ErrRuleRead         ErrorCode = "RULE_READ"
	ErrRuleParse        ErrorCode = "RULE_PARSE"

	// Provider errors
	ErrProviderUnknown  ErrorCode = "PROVIDER_UNKNOWN"
	ErrProviderRegister ErrorCode = "PROVIDER_REGISTER"
	ErrProviderConflict ErrorCode = "PROVIDER_CONFLICT"
	ErrProviderInit     ErrorCode = "PROVIDER_INIT"
	ErrProviderHandle   ErrorCode = "PROVIDER_HANDLE"
	ErrProviderFinish   ErrorCode = "PROVIDER_FINISH"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// RulecastError represents a structured error with code and details
type RulecastError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RulecastError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RulecastError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RulecastError) Is(target error) bool {
	var targetErr *RulecastError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RulecastError with the given code and message
func New(code ErrorCode, message string) *RulecastError {
	return &RulecastError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RulecastError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RulecastError {
	return &RulecastError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RulecastError
func Wrap(err error, code ErrorCode, message string) *RulecastError {
	if err == nil {
		return nil
	}
	return &RulecastError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RulecastError {
	if err == nil {
		return nil
	}
	return &RulecastError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RulecastError) WithDetail(key string, value interface{}) *RulecastError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rcErr *RulecastError
	if errors.As(err, &rcErr) {
		return rcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RulecastError
func GetErrorCode(err error) ErrorCode {
	var rcErr *RulecastError
	if errors.As(err, &rcErr) {
		return rcErr.Code
	}
	return ErrUnknown
}
