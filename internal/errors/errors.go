package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrMalformed     = errors.New("malformed JSON")
	ErrEmptyDocument = errors.New("document is empty")
	ErrTrailingData  = errors.New("trailing data after the root value")
	ErrFileNotFound  = errors.New("file not found")
	ErrNonFinite     = errors.New("number is not finite")
	ErrNotANumber    = errors.New("not a number")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeParse  ErrorType = "parse"
	ErrorTypeIO     ErrorType = "io"
	ErrorTypeConfig ErrorType = "config"
	ErrorTypeInput  ErrorType = "input"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same type
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewParseError creates an error for a document that is not valid JSON
func NewParseError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeParse, Message: message, Err: err}
}

// NewIOError creates an error for a file that could not be read or written
func NewIOError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeIO, Message: message, Err: err}
}

// NewConfigError creates an error for an unreadable or invalid settings file
func NewConfigError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeConfig, Message: message, Err: err}
}

// NewInputError creates an error for text a field could not accept
func NewInputError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInput, Message: message, Err: err}
}

// Sentinel values for errors.Is matching by type
var (
	Parse  = &AppError{Type: ErrorTypeParse}
	IO     = &AppError{Type: ErrorTypeIO}
	Config = &AppError{Type: ErrorTypeConfig}
	Input  = &AppError{Type: ErrorTypeInput}
)

// IsParse reports whether err is a parse error
func IsParse(err error) bool {
	return errors.Is(err, Parse)
}

// IsIO reports whether err is an IO error
func IsIO(err error) bool {
	return errors.Is(err, IO)
}

// UserFriendly returns a short message suitable for the status bar
func UserFriendly(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeParse:
			return fmt.Sprintf("Parse error: %s", appErr.Message)
		case ErrorTypeIO:
			if errors.Is(appErr.Err, ErrFileNotFound) {
				return fmt.Sprintf("File error: %s (not found)", appErr.Message)
			}
			return fmt.Sprintf("File error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Invalid input: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}
