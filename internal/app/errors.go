package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// SourceNotFound indicates the C source file does not exist.
	SourceNotFound AppErrorType = iota
	// InvalidSource indicates the source path cannot be compiled (e.g. no extension).
	InvalidSource
	// ProcessFailed indicates an external process could not be started.
	ProcessFailed
	// ValidationFailed indicates template parameters failed validation.
	ValidationFailed
	// OutputFailed indicates generated output could not be written.
	OutputFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewSourceNotFoundError creates a missing source error.
func NewSourceNotFoundError(path string) *AppError {
	return NewAppError(SourceNotFound, fmt.Sprintf("file %s doesn't exist", path), nil)
}

// NewInvalidSourceError creates an invalid source error.
func NewInvalidSourceError(path string, cause error) *AppError {
	return NewAppError(InvalidSource, fmt.Sprintf("cannot compile %s", path), cause)
}

// NewProcessError creates a process launch error.
func NewProcessError(name string, cause error) *AppError {
	return NewAppError(ProcessFailed, fmt.Sprintf("failed to run %s", name), cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewOutputError creates an output error.
func NewOutputError(message string, cause error) *AppError {
	return NewAppError(OutputFailed, message, cause)
}
