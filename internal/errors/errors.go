// Package errors provides sentinel errors and user-facing error details for twothumbs.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrMissingConstant indicates the metadata source lacks a declared public constant.
	ErrMissingConstant = errors.New("missing metadata constant")

	// ErrValidation indicates a CUE schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a metadata field or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path (optional).
	Location string

	// Field is the metadata or config key involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error renders the failure as a headline followed by indented details.
// Context keys are printed sorted. Cause is printed unless it is one of
// this package's sentinels.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	b.WriteString("\n")

	detail := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %s: %s\n", key, value)
		}
	}
	detail("location", e.Location)
	detail("field", e.Field)

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		detail(k, e.Context[k])
	}

	if e.Cause != nil && !isSentinel(e.Cause) {
		detail("cause", e.Cause.Error())
	}

	if e.Hint != "" {
		b.WriteString("hint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

func isSentinel(err error) bool {
	switch err {
	case ErrMissingConstant, ErrValidation, ErrPermission, ErrNotFound:
		return true
	}
	return false
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewFileError describes a failed filesystem operation on location.
// Permission failures match ErrPermission; anything else keeps only the
// underlying cause, so ENOTDIR or ENOSPC are never reported as permission
// problems.
func NewFileError(message, location string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &DetailError{
			Type:     "permission denied",
			Message:  message,
			Location: location,
			Cause:    fmt.Errorf("%w: %w", ErrPermission, err),
		}
	}
	return &DetailError{
		Type:     "file error",
		Message:  message,
		Location: location,
		Cause:    err,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
