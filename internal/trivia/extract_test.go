package trivia

import (
	"errors"
	"strings"
	"testing"
)

func mustExtract(t *testing.T, raw string, opts ExtractOptions) Result {
	t.Helper()
	res, err := Extract(raw, opts)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := strings.Count(res.Clean, "\n"), strings.Count(raw, "\n"); got != want {
		t.Fatalf("line count changed: %d -> %d", want+1, got+1)
	}
	return res
}

func TestExtractClassifiesLines(t *testing.T) {
	raw := strings.Join([]string{
		"#include <stdio.h>",       // 0 directive
		"  # define N 3",           // 1 directive with leading blanks
		"// header",                // 2 comment-only
		"int x = 1; // trailing",   // 3 trailing
		"/* one line */",           // 4 single block
		"/*",                       // 5 block start
		" * body",                  // 6
		" */",                      // 7 block end
		"int y;",                   // 8 code
		"int z; /* tail */",        // 9 trailing block
	}, "\n")
	res := mustExtract(t, raw, ExtractOptions{})

	wantClean := []string{"", "", "", "int x = 1;", "", "", "", "", "int y;", "int z;"}
	if got := strings.Split(res.Clean, "\n"); strings.Join(got, "|") != strings.Join(wantClean, "|") {
		t.Fatalf("clean lines:\n got %q\nwant %q", got, wantClean)
	}

	wantMacros := Records{{Line: 0, Text: "#include <stdio.h>"}, {Line: 1, Text: "# define N 3"}}
	if !equalRecords(res.Macros, wantMacros) {
		t.Fatalf("macros %+v", res.Macros)
	}
	wantComments := Records{
		{Line: 2, Text: "// header"},
		{Line: 3, Text: "// trailing", Trailing: true},
		{Line: 4, Text: "/* one line */"},
		{Line: 5, Text: "/*\n* body\n*/"},
		{Line: 9, Text: "/* tail */", Trailing: true},
	}
	if !equalRecords(res.Comments, wantComments) {
		t.Fatalf("comments:\n got %+v\nwant %+v", res.Comments, wantComments)
	}
}

func equalRecords(a, b Records) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExtractKeepsCodeAroundBlockComments(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		clean string
	}{
		{"inline block", "int/* w */x;", "int x;"},
		{"leading block", "    /* a */ int x;", "    int x;"},
		{"two blocks", "a /* 1 */ + /* 2 */ b;", "a + b;"},
		{"block then line", "f(); /* a */ // b", "f();"},
		{"code after close", "/* a\n b */ int x;", "\n int x;"},
		{"opener after code", "int x; /* a\n b */", "int x;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustExtract(t, tt.raw, ExtractOptions{})
			if res.Clean != tt.clean {
				t.Fatalf("clean %q, want %q", res.Clean, tt.clean)
			}
		})
	}
}

func TestExtractContinuedDirective(t *testing.T) {
	raw := "#define MAX(a, b) \\\n  ((a) > (b) ? (a) : (b))\nint x;"
	res := mustExtract(t, raw, ExtractOptions{})
	if len(res.Macros) != 1 || res.Macros[0].Line != 0 {
		t.Fatalf("macros %+v", res.Macros)
	}
	if res.Macros[0].Text != "#define MAX(a, b) \\\n((a) > (b) ? (a) : (b))" {
		t.Fatalf("macro text %q", res.Macros[0].Text)
	}
	if res.Clean != "\n\nint x;" {
		t.Fatalf("clean %q", res.Clean)
	}
}

func TestExtractLiteralAwareness(t *testing.T) {
	raw := `puts("http://example.com"); // real`

	naive := mustExtract(t, raw, ExtractOptions{})
	if naive.Clean != `puts("http:` {
		t.Fatalf("textual heuristic must cut at the first marker, got %q", naive.Clean)
	}

	aware := mustExtract(t, raw, ExtractOptions{LiteralAware: true})
	if aware.Clean != `puts("http://example.com");` {
		t.Fatalf("clean %q", aware.Clean)
	}
	if len(aware.Comments) != 1 || aware.Comments[0].Text != "// real" {
		t.Fatalf("comments %+v", aware.Comments)
	}

	chars := mustExtract(t, `c = '"'; s = "/*"; // x`, ExtractOptions{LiteralAware: true})
	if chars.Clean != `c = '"'; s = "/*";` {
		t.Fatalf("clean %q", chars.Clean)
	}
}

func TestExtractOpenerAfterCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		clean    string
		comments []string
	}{
		{
			name:  "marker in a string",
			raw:   "char *s = \"/*\";\nint x;\n",
			clean: "char *s = \"/*\";\nint x;\n",
		},
		{
			name:     "marker in a string before a line comment",
			raw:      "char *s = \"/*\"; // note\nint x;",
			clean:    "char *s = \"/*\";\nint x;",
			comments: []string{"// note"},
		},
		{
			name:     "closed later",
			raw:      "int x; /* spans\n   lines */\nint y;",
			clean:    "int x;\n\nint y;",
			comments: []string{"/* spans\nlines */"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustExtract(t, tt.raw, ExtractOptions{})
			if res.Clean != tt.clean {
				t.Fatalf("clean %q, want %q", res.Clean, tt.clean)
			}
			var got []string
			for _, c := range res.Comments {
				got = append(got, c.Text)
			}
			if strings.Join(got, "|") != strings.Join(tt.comments, "|") {
				t.Fatalf("comments %q, want %q", got, tt.comments)
			}
		})
	}

	// в начале строки незакрытый "/*" по-прежнему ошибка
	if _, err := Extract("int x;\n/* open\n", ExtractOptions{}); err == nil {
		t.Fatal("expected ExtractionError for an opener at line start")
	}
}

func TestExtractUnterminatedBlock(t *testing.T) {
	_, err := Extract("int a;\n/* never\nclosed", ExtractOptions{})
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if ee.Line != 1 {
		t.Fatalf("opener line %d", ee.Line)
	}
}

func TestExtractCompleteness(t *testing.T) {
	raw := "#include <a.h>\n// c1\nint f(void) { /* c2 */ return 0; } // c3\n#define X 1\n"
	res := mustExtract(t, raw, ExtractOptions{})
	markers := strings.Count(raw, "//") + strings.Count(raw, "/*")
	if len(res.Comments) != markers {
		t.Fatalf("expected %d comments, got %d", markers, len(res.Comments))
	}
	directives := 0
	for _, l := range strings.Split(raw, "\n") {
		if isDirective(l) {
			directives++
		}
	}
	if len(res.Macros) != directives {
		t.Fatalf("expected %d directives, got %d", directives, len(res.Macros))
	}
	for i := 1; i < len(res.Comments); i++ {
		if res.Comments[i].Line < res.Comments[i-1].Line {
			t.Fatal("comments must be in line order")
		}
	}
}

func TestQueueOrdersByLine(t *testing.T) {
	q := Queue(Records{{Line: 4, Text: "// b"}, {Line: 1, Text: "// a"}}, Records{{Line: 1, Text: "#x"}, {Line: 7, Text: "#y"}})
	var got []string
	for _, it := range q {
		got = append(got, it.Text)
	}
	if strings.Join(got, ",") != "#x,// a,// b,#y" {
		t.Fatalf("order %v", got)
	}
	if !q[0].Macro || q[1].Macro {
		t.Fatal("macro flag lost")
	}
}
