package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError reports a failed call to the content service.
// Status is zero when no HTTP response was received.
type RequestError struct {
	Endpoint string
	Status   int
	Err      error
}

// NewRequestError constructs a RequestError.
func NewRequestError(endpoint string, status int, err error) error {
	return &RequestError{Endpoint: endpoint, Status: status, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("request error [%s]: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("request error [%s]: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the root error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFound reports whether the service answered 404.
func (e *RequestError) NotFound() bool {
	return e != nil && e.Status == 404
}
