package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var snippetSeeds = []string{
	"",
	"int main(void) { return 0; }\n",
	"// only a comment\n",
	"/* block\n   spanning */ int x;\n",
	"#define MAX(a, b) ((a) > (b) ? (a) : (b))\nint y = MAX(1, 2);\n",
	"char *s = \"// not a comment\"; /* tail */\n",
	"struct s { int a; struct { char b; } in; } v, *p;\n",
	"enum color { RED, GREEN = 2, BLUE };\n",
	"int f(int n) { switch (n) { case 1: return 1; default: break; } return 0; }\n",
	"void g(void) { for (int i = 0; i < 10; i++) { if (i) continue; else break; } }\n",
	"typedef int (*cb)(const char *, ...);\n",
	"int a[3] = { 1, 2, 3 };\n",
	"void h(void) { do { x--; } while (x > 0); goto end; end: ; }\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	paths, err := filepath.Glob(filepath.Join("..", "parser", "testdata", "*.c"))
	if err != nil {
		return
	}
	for _, path := range paths {
		// #nosec G304 -- path comes from repository testdata glob
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
