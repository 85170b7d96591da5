package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of lines the header occupies above the container.
const headerHeight = 1

// renderHeader renders the title bar: name, version and active theme.
func (m Model) renderHeader() string {
	titleText := "keycalc"
	if m.version != "" && m.version != "dev" {
		titleText += " " + m.version
	}
	left := m.styles.Title.Render(titleText)
	right := m.styles.Version.Render("theme: " + m.calc.Theme().String())

	width := displayWidth + 2*(containerBorder+containerPadLeft)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(gap, 0)) + right
}
