package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/keycalc/internal/calculator"
	"github.com/agbru/keycalc/internal/ui"
)

// Container insets. The keypad hit-test depends on them.
const (
	containerBorder  = 1
	containerPadTop  = 1
	containerPadLeft = 2
)

// Styles groups every lipgloss style of the calculator view.
type Styles struct {
	Container  lipgloss.Style
	Title      lipgloss.Style
	Version    lipgloss.Style
	Expression lipgloss.Style
	Result     lipgloss.Style
	ResultErr  lipgloss.Style
	Key        lipgloss.Style
	Operator   lipgloss.Style
	Clear      lipgloss.Style
	Delete     lipgloss.Style
	Equal      lipgloss.Style
	FocusColor lipgloss.TerminalColor
	// Muted renders the placeholder shown while the expression is empty.
	Muted lipgloss.Style
	Help       help.Styles
}

// displayWidth is the inner width shared by the display and keypad.
const displayWidth = keypadColumns*keyWidth + (keypadColumns-1)*keyGap

// newStyles builds the styles of a palette.
func newStyles(t ui.TUITheme) Styles {
	key := lipgloss.NewStyle().
		Foreground(t.KeyText).
		Background(t.Key).
		Align(lipgloss.Center)

	expression := lipgloss.NewStyle().
		Width(displayWidth).
		Align(lipgloss.Right).
		Background(t.Display)

	s := Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Container).
			Padding(containerPadTop, containerPadLeft),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Container),
		Version: lipgloss.NewStyle().
			Foreground(t.Dim),
		Expression: expression.Foreground(t.DisplayText),
		Result: lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(t.ResultText).
			Background(t.ResultBg),
		ResultErr: lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(t.Error).
			Background(t.ResultBg),
		Key:        key,
		Operator:   key.Bold(true),
		Clear:      key.Background(t.Clear),
		Delete:     key.Background(t.Delete),
		Equal:      key.Background(t.Equal).Bold(true),
		FocusColor: t.Focus,
		Muted:      expression.Foreground(t.Dim),
	}

	h := help.New().Styles
	h.ShortKey = h.ShortKey.Foreground(t.Container)
	h.FullKey = h.FullKey.Foreground(t.Container)
	h.ShortDesc = h.ShortDesc.Foreground(t.Dim)
	h.FullDesc = h.FullDesc.Foreground(t.Dim)
	s.Help = h
	return s
}

// buttonStyle returns the style of a button, highlighted when focused.
func (s Styles) buttonStyle(b button, focused bool) lipgloss.Style {
	st := s.baseButtonStyle(b).Width(buttonWidth(b.span))
	if focused {
		st = st.Bold(true).Underline(true).Foreground(s.FocusColor)
	}
	return st
}

func (s Styles) baseButtonStyle(b button) lipgloss.Style {
	switch b.action {
	case actionClear:
		return s.Clear
	case actionDelete:
		return s.Delete
	case actionEvaluate:
		return s.Equal
	case actionAppend:
		if calculator.IsOperator(b.token) {
			return s.Operator
		}
		return s.Key
	default:
		return s.Key
	}
}
