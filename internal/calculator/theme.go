package calculator

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/keycalc/internal/errors"
)

// Theme is the calculator's visual variant. It never affects evaluation.
type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme accepts "dark" or "light", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, apperrors.ValidationError{Field: "theme", Message: fmt.Sprintf("%q is not dark or light", s)}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(b []byte) error {
	parsed, err := ParseTheme(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
