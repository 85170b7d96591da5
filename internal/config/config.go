// Package config handles command-line and environment configuration for keycalc.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/keycalc/internal/errors"
)

// EnvPrefix is the prefix for all keycalc environment variables.
const EnvPrefix = "KEYCALC_"

const (
	// DefaultPort is the HTTP port used in server mode.
	DefaultPort = "8080"
	// DefaultTheme is the calculator theme at startup.
	DefaultTheme = "dark"
	// DefaultLogLevel is the zerolog level name used when none is given.
	DefaultLogLevel = "info"
	// DefaultTimeout bounds graceful shutdown in server mode.
	DefaultTimeout = 10 * time.Second
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Expr is a one-shot expression to evaluate ("-e"). Empty means interactive.
	Expr string
	// REPL selects the line-mode front end instead of the keypad view.
	REPL bool
	// Server starts the HTTP evaluation endpoint.
	Server bool
	// Port is the HTTP listen port in server mode.
	Port string
	// Theme is the initial calculator theme ("dark" or "light").
	Theme string
	// Palette is an optional YAML file overriding the keypad colors.
	Palette string
	// NoColor disables all colors.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// Timeout bounds graceful shutdown of the server.
	Timeout time.Duration
	// Completion requests a shell completion script for the named shell.
	Completion string
}

// Mode names the front end selected by the configuration.
func (c AppConfig) Mode() string {
	switch {
	case c.Completion != "":
		return "completion"
	case c.Expr != "":
		return "eval"
	case c.Server:
		return "server"
	case c.REPL:
		return "repl"
	default:
		return "tui"
	}
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return apperrors.NewConfigError("invalid theme %q (accepted: dark, light)", c.Theme)
	}
	if err := validatePort(c.Port); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	if c.Completion != "" {
		switch c.Completion {
		case "bash", "zsh", "fish", "powershell", "ps":
		default:
			return apperrors.NewConfigError("unsupported shell %q (accepted: bash, zsh, fish, powershell)", c.Completion)
		}
	}
	modes := 0
	for _, on := range []bool{c.Expr != "", c.REPL, c.Server} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("-e, --repl and --server are mutually exclusive")
	}
	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return apperrors.NewConfigError("invalid port %q (expected 1-65535)", port)
	}
	return nil
}

// ParseConfig parses the command-line arguments, applies KEYCALC_* environment
// overrides for flags not given explicitly and validates the result.
// Priority is flags, then environment, then defaults.
//
// It returns flag.ErrHelp when -h or --help is requested.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Expr, "expr", "", "Evaluate an expression and exit.")
	fs.StringVar(&config.Expr, "e", "", "Shorthand for --expr.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the line-mode calculator.")
	fs.BoolVar(&config.Server, "server", false, "Start the HTTP evaluation server.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port for --server.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Initial theme (dark, light).")
	fs.StringVar(&config.Palette, "palette", "", "YAML file overriding keypad colors.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colors.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Graceful shutdown timeout for --server.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script (bash, zsh, fish, powershell).")
	var showVersion bool
	fs.BoolVar(&showVersion, "version", false, "Show version information.")
	fs.BoolVar(&showVersion, "V", false, "Shorthand for --version.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintln(errorWriter, "Keypad calculator. Without flags the interactive keypad starts.")
		fmt.Fprintln(errorWriter, "\nFlags:")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEnvironment variables (prefix %s) apply to flags not set explicitly.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)
	config.Theme = strings.ToLower(strings.TrimSpace(config.Theme))

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
