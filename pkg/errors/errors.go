// Package errors provides custom error types for the clueweb22 system.
// These errors enable programmatic error checking with errors.Is and
// consistent error messages across the catalog and corpus packages.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library matchers, so callers can
// stay on this package for all error handling.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the clueweb22 system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID indicates that a document or file identifier is malformed
	ErrInvalidID = errors.New("invalid identifier")

	// ErrCorpusMissing indicates that no corpus copy exists at the configured root
	ErrCorpusMissing = errors.New("corpus missing")

	// ErrNotReleased indicates that a corpus format is declared but not yet distributed
	ErrNotReleased = errors.New("not yet released")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IDError represents a malformed ClueWeb22 document or file identifier
type IDError struct {
	Kind string // "doc" or "file"
	ID   string
	Err  error
}

// Error implements the error interface
func (e *IDError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid ClueWeb22 %s ID %q: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("invalid ClueWeb22 %s ID %q", e.Kind, e.ID)
}

// Unwrap implements errors.Unwrap
func (e *IDError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IDError) Is(target error) bool {
	return target == ErrInvalidID
}

// NewIDError creates a new IDError
func NewIDError(kind, id string, err error) *IDError {
	return &IDError{Kind: kind, ID: id, Err: err}
}

// ParseError represents a failure to parse a file or data format
type ParseError struct {
	Format string // Format being parsed (yaml, json, warc, csv, bibtex)
	File   string // File or source being parsed
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("failed to parse %s in %s: %v", e.Format, e.File, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LayoutError represents an inconsistency in the on-disk corpus layout
type LayoutError struct {
	Root    string
	Path    string
	Message string
}

// Error implements the error interface
func (e *LayoutError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("corpus layout error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("corpus layout error under %s: %s", e.Root, e.Message)
}

// Is implements errors.Is support
func (e *LayoutError) Is(target error) bool {
	return target == ErrCorpusMissing
}

// IOError represents a file system operation error
type IOError struct {
	Operation string // Operation that failed (read, write, open)
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for wrapping errors with context

// WrapIO wraps an error with IO context
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error with parsing context
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Err: err}
}

// WrapValidation wraps an error with validation context
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidID checks if an error is a malformed identifier error
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}
