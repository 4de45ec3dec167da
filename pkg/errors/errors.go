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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigSave  ErrorCode = "CONFIG_SAVE"

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"
	ErrRuleIndex   ErrorCode = "RULE_INDEX"
	ErrRuleScope   ErrorCode = "RULE_SCOPE"

	// Persistence errors
	ErrRulesLoad   ErrorCode = "RULES_LOAD"
	ErrRulesSave   ErrorCode = "RULES_SAVE"
	ErrRulesFormat ErrorCode = "RULES_FORMAT"

	// World data errors
	ErrCatalogLoad  ErrorCode = "CATALOG_LOAD"
	ErrScenarioLoad ErrorCode = "SCENARIO_LOAD"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// PickupError represents a structured error with code and details
type PickupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PickupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PickupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PickupError) Is(target error) bool {
	var targetErr *PickupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PickupError with the given code and message
func New(code ErrorCode, message string) *PickupError {
	return &PickupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PickupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PickupError {
	return &PickupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PickupError
func Wrap(err error, code ErrorCode, message string) *PickupError {
	if err == nil {
		return nil
	}
	return &PickupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PickupError {
	if err == nil {
		return nil
	}
	return &PickupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PickupError) WithDetail(key string, value interface{}) *PickupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pickupErr *PickupError
	if errors.As(err, &pickupErr) {
		return pickupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PickupError
func GetErrorCode(err error) ErrorCode {
	var pickupErr *PickupError
	if errors.As(err, &pickupErr) {
		return pickupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PickupError
func GetErrorDetails(err error) map[string]interface{} {
	var pickupErr *PickupError
	if errors.As(err, &pickupErr) {
		return pickupErr.Details
	}
	return nil
}
