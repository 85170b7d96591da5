// Package ui provides theme and color support for the calculator's front ends.
// It defines the ANSI color schemes used by line-mode output and the lipgloss
// palettes used by the terminal calculator view, one per calculator theme.
//
// This package is a shared dependency for packages that need color output,
// keeping the calculator core free of presentation concerns.
package ui
