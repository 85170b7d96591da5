//go:generate mockgen -source=calculator.go -destination=mocks/mock_controller.go -package=mocks

// Package calculator holds the keypad calculator's state machine: the
// accumulated expression, the last result and the active theme, together with
// the operations that mutate them.
//
// A Calculator is owned by exactly one view. It performs no I/O and is not
// safe for concurrent use; front ends dispatch one user action at a time.
package calculator

import (
	"fmt"
	"unicode/utf8"

	apperrors "github.com/agbru/keycalc/internal/errors"
	"github.com/agbru/keycalc/internal/expr"
)

// State is the evaluation state of a Calculator.
type State int

const (
	// Idle means no result is pending; the buffer is being edited.
	Idle State = iota
	// Evaluated means Result holds the outcome of the last Evaluate.
	Evaluated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Evaluated:
		return "evaluated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is what Evaluate reports to its caller: either a rendered value or
// the error flag, never both.
type Outcome struct {
	Value string `json:"value,omitempty"`
	Err   bool   `json:"error,omitempty"`
}

// Snapshot is a copy of the calculator's state for rendering.
type Snapshot struct {
	Expression string
	Result     string
	Theme      Theme
	State      State
}

// Controller is the call surface consumed by presentation layers.
type Controller interface {
	Append(token string) error
	DeleteLast()
	Clear()
	Evaluate() Outcome
	SetTheme(theme Theme)
	Snapshot() Snapshot
}

// Calculator implements Controller.
type Calculator struct {
	expression string
	result     string
	theme      Theme
	state      State
	lastErr    error
}

var _ Controller = (*Calculator)(nil)

// Option configures a Calculator during construction.
type Option func(*Calculator)

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(c *Calculator) { c.theme = t }
}

// New returns an empty calculator in the Idle state with the dark theme.
func New(opts ...Option) *Calculator {
	c := &Calculator{theme: Dark}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds one keypad token to the end of the expression. Operator glyphs
// are stored as their canonical ASCII operator. The expression is not
// checked for well-formedness here. Tokens outside the keypad set return a
// ValidationError and leave the calculator unchanged.
func (c *Calculator) Append(token string) error {
	canonical, ok := Canonical(token)
	if !ok {
		return apperrors.ValidationError{Field: "token", Message: fmt.Sprintf("unsupported key %q", token)}
	}
	c.expression += canonical
	c.reset()
	return nil
}

// AppendAll appends each token of a keypad sequence in order, stopping at the
// first unsupported one. Tokens appended before the failure are kept.
func (c *Calculator) AppendAll(tokens []string) error {
	for _, tok := range tokens {
		if err := c.Append(tok); err != nil {
			return err
		}
	}
	return nil
}

// DeleteLast removes the final character. It is a no-op on an empty buffer.
func (c *Calculator) DeleteLast() {
	if c.expression != "" {
		_, size := utf8.DecodeLastRuneInString(c.expression)
		c.expression = c.expression[:len(c.expression)-size]
	}
	c.reset()
}

// Clear empties the expression and the result.
func (c *Calculator) Clear() {
	c.expression = ""
	c.reset()
}

// Evaluate computes the current expression and stores the rendered value or
// the error marker as the result. It never fails from the caller's point of
// view; the underlying cause is kept for LastError.
func (c *Calculator) Evaluate() Outcome {
	value, err := expr.Calculate(c.expression)
	c.state = Evaluated
	c.lastErr = err
	if err != nil {
		c.result = expr.ErrorMarker
		return Outcome{Err: true}
	}
	c.result = value
	return Outcome{Value: value}
}

// SetTheme replaces the active theme. Expression and result are untouched.
func (c *Calculator) SetTheme(theme Theme) {
	c.theme = theme
}

// Expression returns the accumulated expression.
func (c *Calculator) Expression() string { return c.expression }

// Result returns the last result, or "" when Idle.
func (c *Calculator) Result() string { return c.result }

// Theme returns the active theme.
func (c *Calculator) Theme() Theme { return c.theme }

// State returns the current evaluation state.
func (c *Calculator) State() State { return c.state }

// LastError returns the cause of the last failed Evaluate, or nil.
func (c *Calculator) LastError() error { return c.lastErr }

// Snapshot returns a copy of the current state.
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		Expression: c.expression,
		Result:     c.result,
		Theme:      c.theme,
		State:      c.state,
	}
}

func (c *Calculator) reset() {
	c.result = ""
	c.state = Idle
	c.lastErr = nil
}
