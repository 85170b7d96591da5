package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/keycalc/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := ParseConfig("keycalc", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Theme != DefaultTheme || cfg.Port != DefaultPort || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Mode() != "tui" {
		t.Errorf("Mode() = %q, want tui", cfg.Mode())
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{"short expr", []string{"-e", "2+3"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Expr != "2+3" || cfg.Mode() != "eval" {
				t.Errorf("got %+v", cfg)
			}
		}},
		{"long expr", []string{"--expr=7*6"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Expr != "7*6" {
				t.Errorf("Expr = %q", cfg.Expr)
			}
		}},
		{"repl", []string{"--repl"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Mode() != "repl" {
				t.Errorf("Mode() = %q", cfg.Mode())
			}
		}},
		{"server with port", []string{"--server", "--port", "9090", "--timeout", "3s"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Mode() != "server" || cfg.Port != "9090" || cfg.Timeout != 3*time.Second {
				t.Errorf("got %+v", cfg)
			}
		}},
		{"theme is normalized", []string{"--theme", "LIGHT"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Theme != "light" {
				t.Errorf("Theme = %q", cfg.Theme)
			}
		}},
		{"completion wins", []string{"--completion", "zsh", "-e", "1"}, func(t *testing.T, cfg AppConfig) {
			if cfg.Mode() != "completion" {
				t.Errorf("Mode() = %q", cfg.Mode())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg, err := ParseConfig("keycalc", tt.args, &buf)
			if err != nil {
				t.Fatalf("ParseConfig(%v): %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad theme", []string{"--theme", "sepia"}},
		{"port zero", []string{"--port", "0"}},
		{"port too large", []string{"--port", "70000"}},
		{"port not numeric", []string{"--port", "http"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"negative timeout", []string{"--timeout", "-1s"}},
		{"bad shell", []string{"--completion", "tcsh"}},
		{"conflicting modes", []string{"--repl", "--server"}},
		{"positional args", []string{"2+3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := ParseConfig("keycalc", tt.args, &buf)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("keycalc", []string{"--help"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("KEYCALC_")) {
		t.Errorf("usage should mention the environment prefix:\n%s", buf.String())
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("KEYCALC_THEME", "light")
	t.Setenv("KEYCALC_PORT", "9191")
	t.Setenv("KEYCALC_TIMEOUT", "2s")
	t.Setenv("KEYCALC_NO_COLOR", "yes")
	t.Setenv("KEYCALC_LOG_LEVEL", "debug")

	var buf bytes.Buffer
	cfg, err := ParseConfig("keycalc", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Theme != "light" || cfg.Port != "9191" || cfg.Timeout != 2*time.Second || !cfg.NoColor || cfg.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("KEYCALC_THEME", "light")
	t.Setenv("KEYCALC_EXPR", "1+1")

	var buf bytes.Buffer
	cfg, err := ParseConfig("keycalc", []string{"--theme", "dark", "-e", "2*2"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, flag should win over env", cfg.Theme)
	}
	if cfg.Expr != "2*2" {
		t.Errorf("Expr = %q, short flag should win over env", cfg.Expr)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
