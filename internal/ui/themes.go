package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines a color scheme for UI output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Accent highlights computed values.
	Accent lipgloss.TerminalColor
	// Success marks positive outcomes.
	Success lipgloss.TerminalColor
	// Error marks failures.
	Error lipgloss.TerminalColor
	// Dim is used for labels and secondary text.
	Dim lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Accent:  lipgloss.Color("#AF5F00"),
		Success: lipgloss.Color("#008700"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, --no-color is given, or output is not a terminal.
	NoColorTheme = Theme{
		Name:    "none",
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme for output written to w. Colors are disabled
// when noColor is true, when NO_COLOR is set (https://no-color.org/), or
// when w is not a terminal; otherwise the theme called name is activated.
func InitTheme(w io.Writer, noColor bool, name string) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists || !IsTerminal(w) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Accent styles s as a highlighted value.
func Accent(s string) string { return render(s, func(t Theme) lipgloss.TerminalColor { return t.Accent }) }

// Success styles s as a positive outcome.
func Success(s string) string { return render(s, func(t Theme) lipgloss.TerminalColor { return t.Success }) }

// Error styles s as a failure.
func Error(s string) string { return render(s, func(t Theme) lipgloss.TerminalColor { return t.Error }) }

// Dim styles s as secondary text.
func Dim(s string) string { return render(s, func(t Theme) lipgloss.TerminalColor { return t.Dim }) }

func render(s string, pick func(Theme) lipgloss.TerminalColor) string {
	t := GetCurrentTheme()
	if t.Name == NoColorTheme.Name {
		return s
	}
	return lipgloss.NewStyle().Foreground(pick(t)).Render(s)
}
