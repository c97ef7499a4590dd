package parser

import (
	"path/filepath"
	"testing"

	"cstyle/internal/testkit"
)

func TestFixtureSpans(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.c"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no fixtures: %v", err)
	}
	for _, p := range paths {
		name := filepath.Base(p)
		t.Run(name, func(t *testing.T) {
			file, bag := parseSource(t, readFixture(t, name))
			if bag.HasErrors() {
				t.Skipf("fixture has diagnostics: %s", diagnosticsSummary(bag))
			}
			if err := testkit.CheckSpanInvariants(file, file.Source); err != nil {
				t.Fatal(err)
			}
		})
	}
}
