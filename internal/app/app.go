package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/keycalc/internal/calculator"
	"github.com/agbru/keycalc/internal/cli"
	"github.com/agbru/keycalc/internal/config"
	apperrors "github.com/agbru/keycalc/internal/errors"
	"github.com/agbru/keycalc/internal/logging"
	"github.com/agbru/keycalc/internal/server"
	"github.com/agbru/keycalc/internal/tui"
	"github.com/agbru/keycalc/internal/ui"
)

// Application represents the keycalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger

	// In feeds the REPL. Nil means os.Stdin.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the stderr logger built from --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the REPL.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "keycalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		// Validate already checked the level name.
		level, _ := logging.ParseLevel(cfg.LogLevel)
		zerolog.SetGlobalLevel(level)
		app.Logger = logging.NewLoggerWithLevel(errWriter, "keycalc", level)
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, a.Config.Theme)
	if a.Config.Palette != "" {
		if err := ui.LoadPaletteFile(a.Config.Palette); err != nil {
			fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
			var cfgErr apperrors.ConfigError
			if errors.As(err, &cfgErr) {
				return apperrors.ExitErrorConfig
			}
			return apperrors.ExitErrorGeneric
		}
	}

	a.Logger.Debug("starting", logging.String("mode", a.Config.Mode()))

	switch a.Config.Mode() {
	case "eval":
		return cli.EvalOnce(out, a.Config.Expr)
	case "repl":
		return a.runREPL(out)
	case "server":
		return a.runServer(ctx)
	default:
		return a.runTUI(ctx)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) initialTheme() calculator.Theme {
	theme, err := calculator.ParseTheme(a.Config.Theme)
	if err != nil {
		return calculator.Dark
	}
	return theme
}

// runREPL starts the line-mode calculator on In.
func (a *Application) runREPL(out io.Writer) int {
	in := a.In
	if in == nil {
		in = os.Stdin
	}
	repl := cli.NewREPL(calculator.New(calculator.WithTheme(a.initialTheme())), a.Logger)
	repl.SetInput(in)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runServer serves HTTP until SIGINT or SIGTERM.
func (a *Application) runServer(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.NewServer(":"+a.Config.Port,
		server.WithLogger(a.Logger),
		server.WithShutdownTimeout(a.Config.Timeout))
	if err := srv.Run(ctx); err != nil {
		a.Logger.Error("server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive keypad.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version, a.Logger)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
