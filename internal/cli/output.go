// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayOutcome].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatOutcome].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/keycalc/internal/calculator"
	apperrors "github.com/agbru/keycalc/internal/errors"
	"github.com/agbru/keycalc/internal/expr"
	"github.com/agbru/keycalc/internal/ui"
)

// FormatOutcome renders an outcome as the display shows it: the value, or
// the error marker.
func FormatOutcome(o calculator.Outcome) string {
	if o.Err {
		return expr.ErrorMarker
	}
	return o.Value
}

// DisplayOutcome prints "expression = result", colored by outcome.
func DisplayOutcome(out io.Writer, expression string, o calculator.Outcome) {
	color := ui.ColorGreen()
	if o.Err {
		color = ui.ColorRed()
	}
	fmt.Fprintf(out, "  %s = %s%s%s%s\n", expression, ui.ColorBold(), color, FormatOutcome(o), ui.ColorReset())
}

// EvalOnce evaluates a one-shot expression and writes only the result line,
// which keeps the output pipeable. Keypad glyphs in the expression are
// accepted. It returns ExitErrorEvaluation when the result is the error marker.
func EvalOnce(out io.Writer, expression string) int {
	c := calculator.New()
	if err := c.AppendAll(calculator.SplitKeys(expression)); err != nil {
		fmt.Fprintln(out, expr.ErrorMarker)
		return apperrors.ExitErrorEvaluation
	}
	o := c.Evaluate()
	fmt.Fprintln(out, FormatOutcome(o))
	if o.Err {
		return apperrors.ExitErrorEvaluation
	}
	return apperrors.ExitSuccess
}
