// Package cli provides the line-mode front ends of keycalc: the interactive
// REPL, one-shot evaluation and shell completion scripts.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/keycalc/internal/calculator"
	"github.com/agbru/keycalc/internal/logging"
	"github.com/agbru/keycalc/internal/ui"
)

// REPL is a line-mode view over a calculator. Each input line is either a
// command or a run of keypad tokens pressed in order.
type REPL struct {
	calc   calculator.Controller
	logger logging.Logger
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a REPL driving calc. A nil logger discards log output.
func NewREPL(calc calculator.Controller, logger logging.Logger) *REPL {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &REPL{
		calc:   calc,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until exit, quit or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"calc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		eof := errors.Is(err, io.EOF)

		input = strings.TrimSpace(input)
		if input != "" && !r.processCommand(input) {
			return
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %s🧮 keycalc - line mode%s             %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<keys>%s             - Press keys, e.g. 7✖6 or 12+3\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s=%s                  - Evaluate the expression\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdel%s                - Delete the last character\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sclear%s              - Clear expression and result\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stheme dark|light%s   - Switch theme\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sshow%s               - Display the current state\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s               - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Leave line mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one input line. Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "=":
		r.cmdEvaluate()
	case "del", "d":
		r.calc.DeleteLast()
		r.printExpression()
	case "clear", "c":
		r.calc.Clear()
		r.printExpression()
	case "theme":
		r.cmdTheme(args)
	case "show", "st":
		r.cmdShow()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.pressKeys(input)
	}
	return true
}

// pressKeys appends every token of the line. A trailing "=" evaluates.
// The line is validated first, so a bad key leaves the buffer untouched.
func (r *REPL) pressKeys(input string) {
	evaluate := strings.HasSuffix(input, "=")
	keys := calculator.SplitKeys(strings.TrimSuffix(input, "="))

	for _, k := range keys {
		if _, ok := calculator.Canonical(k); !ok {
			fmt.Fprintf(r.out, "%sUnknown key: %s%s\n", ui.ColorRed(), k, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
			return
		}
	}
	for _, k := range keys {
		if err := r.calc.Append(k); err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
	}

	if evaluate {
		r.cmdEvaluate()
		return
	}
	r.printExpression()
}

func (r *REPL) cmdEvaluate() {
	snap := r.calc.Snapshot()
	outcome := r.calc.Evaluate()
	r.logger.Debug("expression evaluated",
		logging.String("expression", snap.Expression),
		logging.Bool("error", outcome.Err))
	DisplayOutcome(r.out, snap.Expression, outcome)
}

func (r *REPL) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: theme dark|light%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	theme, err := calculator.ParseTheme(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown theme: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.calc.SetTheme(theme)
	ui.SetTheme(theme.String())
	fmt.Fprintf(r.out, "Theme changed to: %s%s%s\n", ui.ColorGreen(), theme, ui.ColorReset())
}

func (r *REPL) cmdShow() {
	snap := r.calc.Snapshot()
	fmt.Fprintf(r.out, "\n%sCurrent state:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Expression: %s%s%s\n", ui.ColorCyan(), snap.Expression, ui.ColorReset())
	fmt.Fprintf(r.out, "  Result:     %s%s%s\n", ui.ColorCyan(), snap.Result, ui.ColorReset())
	fmt.Fprintf(r.out, "  Theme:      %s%s%s\n", ui.ColorCyan(), snap.Theme, ui.ColorReset())
	fmt.Fprintf(r.out, "  State:      %s%s%s\n", ui.ColorCyan(), snap.State, ui.ColorReset())
	fmt.Fprintln(r.out)
}

func (r *REPL) printExpression() {
	fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorDim(), r.calc.Snapshot().Expression, ui.ColorReset())
}
