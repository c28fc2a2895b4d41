package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnresolvedToken is matched by every UnresolvedTokenError.
var ErrUnresolvedToken = stdErrors.New("unresolved token")

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures theme definition validation issues.
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

// ColourError reports a colour that could not be parsed or a scale request
// that cannot be satisfied.
type ColourError struct {
	Colour  string
	Message string
	Err     error
}

// NewColourError constructs a ColourError.
func NewColourError(colour, message string, err error) error {
	return &ColourError{Colour: colour, Message: message, Err: err}
}

func (e *ColourError) Error() string {
	if e == nil {
		return ""
	}
	if e.Colour != "" {
		return fmt.Sprintf("colour error [%s]: %s", e.Colour, e.Message)
	}
	return fmt.Sprintf("colour error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ColourError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// VariantError indicates a variant definition that does not match the
// fragments supplied for it.
type VariantError struct {
	Dimension string
	Value     string
	Message   string
}

// NewVariantError constructs a VariantError.
func NewVariantError(dimension, value, message string) error {
	return &VariantError{Dimension: dimension, Value: value, Message: message}
}

func (e *VariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value != "" {
		return fmt.Sprintf("variant error [%s=%q]: %s", e.Dimension, e.Value, e.Message)
	}
	return fmt.Sprintf("variant error [%s]: %s", e.Dimension, e.Message)
}

// ConfigError is raised at the call boundary when a component is used with
// props its variant definitions do not allow, such as omitting a required
// variant.
type ConfigError struct {
	Key     string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(key, message string) error {
	return &ConfigError{Key: key, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// UnresolvedTokenError reports a token that a theme could not map to a
// concrete value. It matches ErrUnresolvedToken under errors.Is.
type UnresolvedTokenError struct {
	Category string
	Token    any
	Reason   string
}

// NewUnresolvedTokenError constructs an UnresolvedTokenError.
func NewUnresolvedTokenError(category string, token any, reason string) error {
	return &UnresolvedTokenError{Category: category, Token: token, Reason: reason}
}

func (e *UnresolvedTokenError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("unresolved token %v in %q: %s", e.Token, e.Category, e.Reason)
	}
	return fmt.Sprintf("unresolved token %v in %q", e.Token, e.Category)
}

// Unwrap exposes ErrUnresolvedToken.
func (e *UnresolvedTokenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrUnresolvedToken
}
