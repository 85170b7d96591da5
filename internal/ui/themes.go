package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for line-mode output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes such as a computed value.
	Success string
	// Warning is used for prompts and command names.
	Warning string
	// Error indicates failures, including the evaluation error marker.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;220m", // Amber
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;214m", // Light orange
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;130m", // Dark amber
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;160m", // Coral red
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines the lipgloss colors of the calculator view.
// Slot names follow the parts of the widget they paint.
type TUITheme struct {
	Container   lipgloss.TerminalColor // frame around the whole calculator
	Display     lipgloss.TerminalColor // expression field background
	DisplayText lipgloss.TerminalColor
	ResultBg    lipgloss.TerminalColor
	ResultText  lipgloss.TerminalColor
	Key         lipgloss.TerminalColor // digit and operator buttons
	KeyText     lipgloss.TerminalColor
	Clear       lipgloss.TerminalColor
	Delete      lipgloss.TerminalColor
	Equal       lipgloss.TerminalColor
	Focus       lipgloss.TerminalColor // keypad cursor
	Error       lipgloss.TerminalColor
	Dim         lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the amber and charcoal palette.
	DarkTUITheme = TUITheme{
		Container:   lipgloss.Color("#FACC15"),
		Display:     lipgloss.Color("#EAB308"),
		DisplayText: lipgloss.Color("#FFFFFF"),
		ResultBg:    lipgloss.Color("#1F2937"),
		ResultText:  lipgloss.Color("#FFFFFF"),
		Key:         lipgloss.Color("#374151"),
		KeyText:     lipgloss.Color("#FFFFFF"),
		Clear:       lipgloss.Color("#CA8A04"),
		Delete:      lipgloss.Color("#CA8A04"),
		Equal:       lipgloss.Color("#15803D"),
		Focus:       lipgloss.Color("#FDE047"),
		Error:       lipgloss.Color("#FF4444"),
		Dim:         lipgloss.Color("#666666"),
	}

	// LightTUITheme is the pale yellow and coral palette.
	LightTUITheme = TUITheme{
		Container:   lipgloss.Color("#FDE047"),
		Display:     lipgloss.Color("#FACC15"),
		DisplayText: lipgloss.Color("#000000"),
		ResultBg:    lipgloss.Color("#F3F4F6"),
		ResultText:  lipgloss.Color("#000000"),
		Key:         lipgloss.Color("#F87171"),
		KeyText:     lipgloss.Color("#000000"),
		Clear:       lipgloss.Color("#EF4444"),
		Delete:      lipgloss.Color("#EF4444"),
		Equal:       lipgloss.Color("#4ADE80"),
		Focus:       lipgloss.Color("#B91C1C"),
		Error:       lipgloss.Color("#B91C1C"),
		Dim:         lipgloss.Color("#6B7280"),
	}

	// NoColorTUITheme disables all TUI colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Container:   lipgloss.NoColor{},
		Display:     lipgloss.NoColor{},
		DisplayText: lipgloss.NoColor{},
		ResultBg:    lipgloss.NoColor{},
		ResultText:  lipgloss.NoColor{},
		Key:         lipgloss.NoColor{},
		KeyText:     lipgloss.NoColor{},
		Clear:       lipgloss.NoColor{},
		Delete:      lipgloss.NoColor{},
		Equal:       lipgloss.NoColor{},
		Focus:       lipgloss.NoColor{},
		Error:       lipgloss.NoColor{},
		Dim:         lipgloss.NoColor{},
	}

	// tuiThemes holds the palettes in effect, including palette file overrides.
	tuiThemes = map[string]TUITheme{
		"dark":  DarkTUITheme,
		"light": LightTUITheme,
	}
)

// TUIThemeFor returns the palette for a calculator theme name ("dark" or
// "light"). When colors are disabled it returns NoColorTUITheme; unknown
// names fall back to dark.
func TUIThemeFor(name string) TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	if t, ok := tuiThemes[name]; ok {
		return t
	}
	return tuiThemes["dark"]
}

// ResetTUIThemes discards palette file overrides.
func ResetTUIThemes() {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	tuiThemes = map[string]TUITheme{
		"dark":  DarkTUITheme,
		"light": LightTUITheme,
	}
}

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

// SetTheme changes the active line-mode theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
// A "none" theme set by InitTheme is kept, so NO_COLOR survives theme switches.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if currentTheme.Name == "none" && name != "none" {
		return
	}
	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
//   - name: The calculator theme to start with ("dark" or "light").
func InitTheme(noColor bool, name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any value, even empty, disables colors (see no-color.org)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	if name == "light" {
		currentTheme = LightTheme
		return
	}
	currentTheme = DarkTheme
}
