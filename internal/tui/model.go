package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/keycalc/internal/calculator"
	"github.com/agbru/keycalc/internal/config"
	apperrors "github.com/agbru/keycalc/internal/errors"
	"github.com/agbru/keycalc/internal/expr"
	"github.com/agbru/keycalc/internal/logging"
	"github.com/agbru/keycalc/internal/ui"
)

// displayHeight is the number of lines above the keypad inside the
// container: expression, result and a blank separator.
const displayHeight = 3

// Model is the root bubbletea model of the calculator view. It owns exactly
// one Calculator.
type Model struct {
	calc   *calculator.Calculator
	keymap KeyMap
	help   help.Model
	styles Styles
	cursor cursor

	ctx      context.Context
	logger   logging.Logger
	version  string
	exitCode int
}

// NewModel creates a calculator view. A nil logger discards log output.
func NewModel(ctx context.Context, calc *calculator.Calculator, version string, logger logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	m := Model{
		calc:     calc,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		ctx:      ctx,
		logger:   logger,
		version:  version,
		exitCode: apperrors.ExitSuccess,
	}
	m.applyTheme()
	return m
}

// Calculator returns the calculator driven by the view.
func (m Model) Calculator() *calculator.Calculator { return m.calc }

// ExitCode returns the exit status once the program has stopped.
func (m Model) ExitCode() int { return m.exitCode }

// Init starts watching the parent context.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Evaluate):
		m.evaluate()
	case key.Matches(msg, m.keymap.Delete):
		m.calc.DeleteLast()
	case key.Matches(msg, m.keymap.Clear):
		m.calc.Clear()
	case key.Matches(msg, m.keymap.Theme):
		m.setTheme(m.calc.Theme().Toggle())
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Up):
		m.cursor = m.cursor.move(-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.cursor = m.cursor.move(1, 0)
	case key.Matches(msg, m.keymap.Left):
		m.cursor = m.cursor.move(0, -1)
	case key.Matches(msg, m.keymap.Right):
		m.cursor = m.cursor.move(0, 1)
	case key.Matches(msg, m.keymap.Press):
		m.press(keypad[m.cursor.row][m.cursor.col])
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		// Unsupported runes are ignored.
		_ = m.calc.Append(string(msg.Runes))
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x := msg.X - (containerBorder + containerPadLeft)
	y := msg.Y - (headerHeight + containerBorder + containerPadTop + displayHeight)
	if c, ok := buttonAt(x, y); ok {
		m.cursor = c
		m.press(keypad[c.row][c.col])
	}
	return m, nil
}

// press performs a keypad button's action.
func (m *Model) press(b button) {
	switch b.action {
	case actionAppend:
		_ = m.calc.Append(b.token)
	case actionClear:
		m.calc.Clear()
	case actionDelete:
		m.calc.DeleteLast()
	case actionEvaluate:
		m.evaluate()
	case actionDark:
		m.setTheme(calculator.Dark)
	case actionLight:
		m.setTheme(calculator.Light)
	}
}

func (m *Model) evaluate() {
	expression := m.calc.Expression()
	outcome := m.calc.Evaluate()
	if outcome.Err {
		m.logger.Debug("evaluation failed",
			logging.String("expression", expression),
			logging.Err(m.calc.LastError()))
		return
	}
	m.logger.Debug("expression evaluated",
		logging.String("expression", expression),
		logging.String("value", outcome.Value))
}

func (m *Model) setTheme(t calculator.Theme) {
	m.calc.SetTheme(t)
	m.applyTheme()
}

// applyTheme rebuilds the styles from the calculator's theme.
func (m *Model) applyTheme() {
	m.styles = newStyles(ui.TUIThemeFor(m.calc.Theme().String()))
	m.help.Styles = m.styles.Help
}

// View renders the calculator.
func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDisplay(),
		"",
		m.renderKeypad(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Container.Render(body),
		m.help.View(m.keymap),
	)
}

func (m Model) renderDisplay() string {
	expression, exprStyle := m.calc.Expression(), m.styles.Expression
	if expression == "" {
		expression, exprStyle = "0", m.styles.Muted
	}
	result := m.calc.Result()
	resultStyle := m.styles.Result
	if result == expr.ErrorMarker {
		resultStyle = m.styles.ResultErr
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		exprStyle.Render(truncateLeft(expression, displayWidth)),
		resultStyle.Render(result),
	)
}

func (m Model) renderKeypad() string {
	rows := make([]string, 0, 2*len(keypad))
	for r, row := range keypad {
		if r > 0 {
			rows = append(rows, "")
		}
		cells := make([]string, 0, 2*len(row))
		for c, b := range row {
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", keyGap))
			}
			focused := m.cursor == cursor{row: r, col: c}
			cells = append(cells, m.styles.buttonStyle(b, focused).Render(b.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// truncateLeft keeps the last width runes of s, so the newest input stays visible.
func truncateLeft(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return "…" + string(r[len(r)-width+1:])
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}

// Run is the public entry point for the keypad mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string, logger logging.Logger) int {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	theme, err := calculator.ParseTheme(cfg.Theme)
	if err != nil {
		theme = calculator.Dark
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, calculator.New(calculator.WithTheme(theme)), version, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("keypad view failed", err)
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
