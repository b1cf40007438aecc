// Package errors provides a structured error type hierarchy for cmdpal.
//
// This package defines base error types for common error conditions, wrapped error
// types that add contextual information, and helper functions for error wrapping
// and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - template or file not found
//   - ErrInvalid - validation failed
//   - ErrMissingValue - required placeholder left empty
//   - ErrCanceled - user canceled operation
//   - ErrIO - file I/O error
//   - ErrUnavailable - an optional capability (clipboard, terminal) is missing
//
// Wrapped error types (add context):
//   - MissingValueError{Name} - a required placeholder received empty input
//   - TemplateError{Op, Description, Err} - template store operation errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNotFound
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadHistory")
//
//	// Use structured error types
//	return &errors.MissingValueError{Name: "DIRECTORY"}
//
//	// Check error types
//	if errors.IsMissingValue(err) {
//	    // abort this invocation only
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a template or resource was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrMissingValue indicates a required placeholder received empty input.
	ErrMissingValue = baseError("required value missing")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrUnavailable indicates an optional capability is not present.
	ErrUnavailable = baseError("unavailable")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// MissingValueError is returned when a required placeholder is left empty.
// Resolution is all-or-nothing: a single missing value aborts the whole
// command invocation.
type MissingValueError struct {
	// Name is the placeholder name (e.g. "DIRECTORY").
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("required value missing for {%s}", e.Name)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// TemplateError represents an error during a template store operation.
type TemplateError struct {
	// Op is the operation being performed (e.g., "load", "parse", "replace").
	Op string
	// Description identifies the template involved (optional).
	Description string
	// Err is the underlying error.
	Err error
}

func (e *TemplateError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("template %s %q: %s", e.Op, e.Description, e.Err)
	}
	return fmt.Sprintf("template %s: %s", e.Op, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsMissingValue reports whether err is or wraps ErrMissingValue.
func IsMissingValue(err error) bool {
	return errors.Is(err, ErrMissingValue)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsUnavailable reports whether err is or wraps ErrUnavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// AsMissingValueError reports whether err can be typed as a *MissingValueError.
func AsMissingValueError(err error) (*MissingValueError, bool) {
	var me *MissingValueError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// AsTemplateError reports whether err can be typed as a *TemplateError.
func AsTemplateError(err error) (*TemplateError, bool) {
	var te *TemplateError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
