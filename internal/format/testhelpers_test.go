package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cstyle/internal/ast"
	"cstyle/internal/style"
	"cstyle/internal/trivia"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, bag := parseText("test.c", src, 100)
	if bag.HasErrors() {
		first, _ := bag.FirstError()
		t.Fatalf("parse: %s\nsource:\n%s", first.Message, src)
	}
	return file
}

func mustRender(t *testing.T, src string, pol style.Policy) string {
	t.Helper()
	out, err := Render(mustParse(t, src), pol)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

// formatAnchored runs extraction, parsing and anchored rendering.
func formatAnchored(t *testing.T, raw string, pol style.Policy) string {
	t.Helper()
	res, err := trivia.Extract(raw, trivia.ExtractOptions{LiteralAware: pol.LiteralAwareComments})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	pol.Trivia = style.TriviaAnchored
	out, err := Format(mustParse(t, res.Clean), Options{Policy: pol, Comments: res.Comments, Macros: res.Macros})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	return out
}

// fixtures returns the shared C samples by name.
func fixtures(t *testing.T) map[string]string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("..", "parser", "testdata", "*.c"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no fixtures: %v", err)
	}
	out := make(map[string]string, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		out[filepath.Base(p)] = string(data)
	}
	return out
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
