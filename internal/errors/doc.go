// Package apperrors defines the application's error types, allowing a clear
// distinction between locally defined failures, failures expressed through
// the third-party goerr representation, parse failures and configuration
// errors.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is() and
// errors.As().
package apperrors
