// Package ui provides theme and color support for the CLI output.
// It defines lipgloss color schemes and small helpers that style text
// consistently, so presentation code never deals with escape codes.
package ui
