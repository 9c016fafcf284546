package apperrors

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Application exit codes define the standard exit statuses for the application.
// Demo failures never change the exit status; only configuration problems do.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// Error kinds returned by Kind.
const (
	KindLocal   = "local"
	KindLibrary = "library"
	KindParse   = "parse"
	KindConfig  = "config"
	KindUnknown = "unknown"
)

// LocalError is the locally defined failure type. It carries a single
// human-readable message and nothing else.
type LocalError struct {
	// Message explains what went wrong.
	Message string
}

// Error returns the error message for a LocalError.
func (e LocalError) Error() string { return e.Message }

// NewLibraryError creates an error using the goerr representation, the
// second, independently defined error kind of the application.
func NewLibraryError(msg string, opts ...goerr.Option) *goerr.Error {
	return goerr.New(msg, opts...)
}

// LibraryErrorFrom converts a LocalError into a library error. The
// conversion is lossy: only the message survives.
func LibraryErrorFrom(e LocalError) *goerr.Error {
	return goerr.New(e.Message)
}

// ToLibraryError converts any error into a library error so heterogeneous
// failures can share one reporting path. LocalErrors go through
// LibraryErrorFrom, library errors are returned as is, and anything else
// keeps only its message. A nil error yields nil.
func ToLibraryError(err error) *goerr.Error {
	if err == nil {
		return nil
	}
	var lib *goerr.Error
	if errors.As(err, &lib) {
		return lib
	}
	var local LocalError
	if errors.As(err, &local) {
		return LibraryErrorFrom(local)
	}
	return goerr.New(err.Error())
}

// ParseError reports input that could not be decoded into a structured
// value, either because it does not match the expected layout or because a
// captured field cannot be converted to its type.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string
	// Cause is the underlying reason.
	Cause error
}

// Error returns a formatted message describing the parse failure.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ParseError) Unwrap() error { return e.Cause }

// ConfigError represents a user configuration error, such as an unreadable
// config file. It indicates that the application cannot proceed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the message, followed by the cause when there is one.
func (e ConfigError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e ConfigError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// IsConfigError reports whether err is a ConfigError or ValidationError.
func IsConfigError(err error) bool {
	var cfgErr ConfigError
	var valErr ValidationError
	return errors.As(err, &cfgErr) || errors.As(err, &valErr)
}

// Kind classifies err into one of the Kind* constants.
func Kind(err error) string {
	var (
		local LocalError
		lib   *goerr.Error
		parse ParseError
	)
	switch {
	case errors.As(err, &local):
		return KindLocal
	case errors.As(err, &parse):
		return KindParse
	case errors.As(err, &lib):
		return KindLibrary
	case IsConfigError(err):
		return KindConfig
	default:
		return KindUnknown
	}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
