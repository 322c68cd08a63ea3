package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Scan errors
	ErrCodeRootNotFound   ErrorCode = "ROOT_NOT_FOUND"
	ErrCodeRootUnreadable ErrorCode = "ROOT_UNREADABLE"

	// Probe errors
	ErrCodeNotARepository ErrorCode = "NOT_A_REPOSITORY"
	ErrCodeProbeFailed    ErrorCode = "PROBE_FAILED"

	// Command execution errors
	ErrCodeCommandTimeout  ErrorCode = "COMMAND_TIMEOUT"
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"
	ErrCodeGitNotInstalled ErrorCode = "GIT_NOT_INSTALLED"

	// Dashboard errors
	ErrCodeDashboardInit ErrorCode = "DASHBOARD_INIT_FAILED"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PatrolError represents a structured error with context
type PatrolError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PatrolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PatrolError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PatrolError) WithDetail(key string, value interface{}) *PatrolError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PatrolError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PatrolError
func New(code ErrorCode, message string) *PatrolError {
	return &PatrolError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PatrolError
func Wrap(err error, code ErrorCode, message string) *PatrolError {
	return &PatrolError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific PatrolError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	patrolErr, ok := err.(*PatrolError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return patrolErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	patrolErr, ok := err.(*PatrolError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return patrolErr.Code
}
