package parser

import (
	"fmt"
	"strings"
)

// ParseErrorType represents the type of token parsing error.
type ParseErrorType int

const (
	// MissingSeparator indicates a token without the `:` between type and name.
	MissingSeparator ParseErrorType = iota
	// MissingType indicates a blank type before the `:`.
	MissingType
	// UnknownType indicates a type outside the allow-list.
	UnknownType
	// MissingName indicates a blank variable name after the `:`.
	MissingName
)

// ParseError represents a failure to parse one `type:name` token.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Token is the raw token as given on the command line.
	Token string
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

// newParseError creates a new ParseError for the given token.
func newParseError(typ ParseErrorType, token, message string) *ParseError {
	return &ParseError{
		Type:    typ,
		Token:   token,
		Message: message,
	}
}

// ParamErrors collects every token failure from one ParseParams call.
type ParamErrors struct {
	Errors []*ParseError
}

// Error joins the individual messages, one per line.
func (e *ParamErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	if len(msgs) == 1 {
		return msgs[0]
	}
	return fmt.Sprintf("%d invalid parameters:\n%s", len(msgs), strings.Join(msgs, "\n"))
}

// Unwrap exposes the individual failures to errors.Is/As.
func (e *ParamErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}
