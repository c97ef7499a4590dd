package style

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[style]
indent = "space"
indent_width = 2
space_multiplicative = false
trivia = "positional"
pad_do_while_cond = false

[fmt]
jobs = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := cfg.Policy
	if p.IndentUnit != "  " {
		t.Errorf("indent unit %q", p.IndentUnit)
	}
	if p.SpaceMultiplicative {
		t.Error("space_multiplicative must be false")
	}
	if !p.SpaceAdditive || !p.FuncBraceNewLine || p.BlankLinesBetweenFuncs != 1 {
		t.Errorf("defaults must survive: %+v", p)
	}
	if p.Trivia != TriviaPositional {
		t.Errorf("trivia %s", p.Trivia)
	}
	if p.PadDoWhileCond {
		t.Error("pad_do_while_cond must be false")
	}
	if cfg.Fmt.Jobs != 3 || cfg.Fmt.CPP != "cpp" {
		t.Errorf("fmt settings %+v", cfg.Fmt)
	}
}

func TestLoadReportsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[style]\nindent = \"tab\"\nbrace_style = \"gnu\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Undecoded) != 1 || cfg.Undecoded[0] != "style.brace_style" {
		t.Fatalf("undecoded %v", cfg.Undecoded)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"indent kind", "[style]\nindent = \"mixed\"\n", "indent must be"},
		{"indent width", "[style]\nindent = \"space\"\nindent_width = 0\n", "indent_width"},
		{"blank lines", "[style]\nblank_lines_between_funcs = 42\n", "blank lines"},
		{"trivia", "[style]\ntrivia = \"sideways\"\n", "trivia"},
		{"jobs", "[fmt]\njobs = -1\n", "jobs"},
		{"syntax", "[style\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestFindSearchesParents(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[style]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// t.TempDir может лежать под каталогом с cstyle.toml только в странном окружении
	if cfg.Path == "" && cfg.Policy != Default() {
		t.Fatalf("expected defaults, got %+v", cfg.Policy)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.IndentUnit = "    "
	cfg.Policy.BlankLinesBetweenFuncs = 2
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := writeConfig(t, t.TempDir(), buf.String())
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v\n%s", err, buf.String())
	}
	if back.Policy != cfg.Policy {
		t.Fatalf("policy changed:\n got %+v\nwant %+v", back.Policy, cfg.Policy)
	}
	if len(back.Undecoded) != 0 {
		t.Fatalf("encoder wrote unknown keys: %v", back.Undecoded)
	}
}
