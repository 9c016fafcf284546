// Package cli builds the snippets command tree and renders results for the
// terminal.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
package cli
