// Package logging provides a unified logging interface for the snippets CLI.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while keeping zerolog as the single backend.
package logging
