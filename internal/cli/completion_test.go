package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"complete -F _keycalc_completions keycalc", "--theme)", `compgen -W "dark light"`, "--palette)"}},
		{"zsh", []string{"#compdef keycalc", "'(-e --expr)'{-e,--expr}'[Evaluate an expression and exit]:expression:'", "--palette[YAML palette file]:file:_files"}},
		{"fish", []string{"complete -c keycalc -f", "complete -c keycalc -l theme -d 'Initial theme' -xa 'dark light'", "-l palette -d 'YAML palette file' -rF"}},
		{"powershell", []string{"Register-ArgumentCompleter -CommandName 'keycalc'", "'--log-level' {", "@{Name = '-V'"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestFlagRegistry_CoversEveryShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "bash"); err != nil {
		t.Fatal(err)
	}
	for _, f := range flagRegistry {
		if !strings.Contains(buf.String(), "--"+f.Long) {
			t.Errorf("bash options missing --%s", f.Long)
		}
	}
}
