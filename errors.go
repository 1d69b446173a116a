package prettyprint

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// UsageError represents a wrong command line invocation
	UsageError ErrorType = "usage_error"

	// ParseError represents parsing-related errors
	ParseError ErrorType = "parse_error"

	// IOError represents I/O-related errors
	IOError ErrorType = "io_error"

	// ConfigError represents configuration-related errors
	ConfigError ErrorType = "config_error"

	// SelectError represents an invalid or unsupported subtree selector
	SelectError ErrorType = "select_error"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *AppError {
	return &AppError{
		Type:    UsageError,
		Message: message,
		Code:    "USAGE001",
	}
}

// NewParseError creates a new parsing error
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ParseError,
		Message: message,
		Err:     err,
		Code:    "PARSE001",
	}
}

// NewIOError creates a new I/O error
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    IOError,
		Message: message,
		Err:     err,
		Code:    "IO001",
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ConfigError,
		Message: message,
		Err:     err,
		Code:    "CONFIG001",
	}
}

// NewSelectError creates a new selector error
func NewSelectError(message string, err error) *AppError {
	return &AppError{
		Type:    SelectError,
		Message: message,
		Err:     err,
		Code:    "SELECT001",
	}
}
