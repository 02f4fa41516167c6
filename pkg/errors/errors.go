// Package errors provides custom error types for the trophycase system.
// These errors enable programmatic error checking and diagnostics without
// ever propagating a fatal condition past the reconciliation boundary.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the trophycase system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrSourceUnavailable indicates that a provider's backing store or
	// service could not be reached; the provider chain proceeds
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUntrusted indicates a payload whose origin could not be confirmed
	// as belonging to the requested title
	ErrUntrusted = errors.New("untrusted source")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ParseError represents an error when parsing a payload
type ParseError struct {
	Shape   string // "array", "keyed", "markup", "freetext", "tagtree"
	Record  string // the record or fragment that failed, if isolated
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("%s parse error for record %q: %s", e.Shape, e.Record, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Shape, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(shape, record, message string, err error) *ParseError {
	return &ParseError{Shape: shape, Record: record, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "walk"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// SourceError represents a provider failure; it is always non-fatal and is
// aggregated for diagnostics rather than raised
type SourceError struct {
	Source  string // provider id as string
	Title   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("source %s failed for %q: %s", e.Source, e.Title, e.Message)
	}
	return fmt.Sprintf("source %s failed: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError
func NewSourceError(source, title string, err error) *SourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SourceError{Source: source, Title: title, Message: message, Err: err}
}

// ScrapeError represents a failure while fetching or walking a scraped page
type ScrapeError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scrape error for %s (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ScrapeError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrSourceUnavailable
	}
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	return false
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSourceUnavailable checks if an error indicates source unavailability
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(shape, record string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(shape, record, err.Error(), err)
}

// WrapSource wraps an error as a SourceError
func WrapSource(source, title string, err error) error {
	if err == nil {
		return nil
	}
	return NewSourceError(source, title, err)
}
