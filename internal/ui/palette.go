package ui

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/keycalc/internal/errors"
)

// PaletteFile is the YAML document accepted by --palette. Each theme maps
// slot names to colors ("#RRGGBB", "#RGB" or an ANSI 256 index).
//
//	dark:
//	  key: "#111827"
//	  equal: "#166534"
//	light:
//	  key: "#FCA5A5"
type PaletteFile map[string]map[string]string

var paletteSlots = map[string]func(*TUITheme, lipgloss.Color){
	"container":    func(t *TUITheme, c lipgloss.Color) { t.Container = c },
	"display":      func(t *TUITheme, c lipgloss.Color) { t.Display = c },
	"display_text": func(t *TUITheme, c lipgloss.Color) { t.DisplayText = c },
	"result":       func(t *TUITheme, c lipgloss.Color) { t.ResultBg = c },
	"result_text":  func(t *TUITheme, c lipgloss.Color) { t.ResultText = c },
	"key":          func(t *TUITheme, c lipgloss.Color) { t.Key = c },
	"key_text":     func(t *TUITheme, c lipgloss.Color) { t.KeyText = c },
	"clear":        func(t *TUITheme, c lipgloss.Color) { t.Clear = c },
	"delete":       func(t *TUITheme, c lipgloss.Color) { t.Delete = c },
	"equal":        func(t *TUITheme, c lipgloss.Color) { t.Equal = c },
	"focus":        func(t *TUITheme, c lipgloss.Color) { t.Focus = c },
	"error":        func(t *TUITheme, c lipgloss.Color) { t.Error = c },
	"dim":          func(t *TUITheme, c lipgloss.Color) { t.Dim = c },
}

// PaletteSlots returns the accepted slot names, sorted.
func PaletteSlots() []string {
	names := make([]string, 0, len(paletteSlots))
	for name := range paletteSlots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsePalette decodes a palette document and applies it on top of the
// built-in palettes, returning the resulting themes keyed by name.
func ParsePalette(r io.Reader) (map[string]TUITheme, error) {
	var doc PaletteFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, apperrors.NewConfigError("invalid palette file: %v", err)
	}

	result := map[string]TUITheme{
		"dark":  DarkTUITheme,
		"light": LightTUITheme,
	}
	for themeName, slots := range doc {
		theme, ok := result[themeName]
		if !ok {
			return nil, apperrors.NewConfigError("palette: unknown theme %q (accepted: dark, light)", themeName)
		}
		for slot, value := range slots {
			set, ok := paletteSlots[slot]
			if !ok {
				return nil, apperrors.NewConfigError("palette: unknown slot %q in %s (accepted: %s)",
					slot, themeName, strings.Join(PaletteSlots(), ", "))
			}
			if !validColor(value) {
				return nil, apperrors.NewConfigError("palette: invalid color %q for %s.%s", value, themeName, slot)
			}
			set(&theme, lipgloss.Color(value))
		}
		result[themeName] = theme
	}
	return result, nil
}

// LoadPaletteFile reads the palette file at path and installs it for
// TUIThemeFor. On error the palettes in effect are left unchanged.
func LoadPaletteFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return apperrors.WrapError(err, "failed to open palette file")
	}
	defer f.Close()

	themes, err := ParsePalette(f)
	if err != nil {
		return err
	}

	themeMutex.Lock()
	tuiThemes = themes
	themeMutex.Unlock()
	return nil
}

func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
