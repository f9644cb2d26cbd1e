package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the source document could not be loaded.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a raw schema did not match any recognized shape.
	ErrSchema = errors.New("malformed schema")

	// ErrReference indicates a reference to a component that does not exist.
	ErrReference = errors.New("reference error")

	// ErrUnsupported indicates a recognized construct that is not modeled.
	// It is never fatal: the enclosing operation is skipped.
	ErrUnsupported = errors.New("unsupported")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to load a source document.
// This includes YAML/JSON deserialization errors and a non-mapping root.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError reports a raw schema node that matches none of the shapes the
// normalizer understands. It is fatal for the generation run: a generator
// never guesses a type for input it does not recognize.
type SchemaError struct {
	// Path locates the offending raw node (e.g., "components.schemas.Pet.properties.tags.items")
	Path string
	// Shape is a short rendering of the raw node, for diagnostics
	Shape string
	// Message describes what was expected
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "malformed schema"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Shape != "" {
		msg += " (got " + e.Shape + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ReferenceError represents a $ref whose target is not in the component
// registry (or in components.parameters, for parameter references).
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Path locates the node holding the reference
	Path string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// UnsupportedError marks a recognized construct that the IR does not model,
// such as a multipart request body or a DELETE operation. Callers drop the
// enclosing operation and continue.
type UnsupportedError struct {
	// Path locates the construct (e.g., "paths./upload.post.requestBody")
	Path string
	// Feature names the unsupported construct (e.g., "content type multipart/form-data")
	Feature string
	// Detail provides additional context
	Detail string
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	msg := "unsupported"
	if e.Feature != "" {
		msg += " " + e.Feature
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ResourceLimitError represents a resource exhaustion condition, such as a
// schema nested deeper than the normalizer's configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "nesting_depth")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Path locates where the limit was hit
	Path string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
