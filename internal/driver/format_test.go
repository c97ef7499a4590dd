package driver

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"cstyle/internal/source"
	"cstyle/internal/style"
)

const (
	messy     = "int add(int a,int b){return a+b;}\n"
	formatted = "int add(int a, int b)\n{\n\treturn a + b;\n}\n"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func baseOptions() FormatOptions {
	return FormatOptions{Pipeline: PipelineOptions{Policy: style.Default()}, Jobs: 2}
}

func TestFormatPathsModes(t *testing.T) {
	tests := []struct {
		name          string
		check, stdout bool
		wantOnDisk    string
		wantFormatted string
	}{
		{name: "write", wantOnDisk: formatted},
		{name: "check", check: true, wantOnDisk: messy},
		{name: "stdout", stdout: true, wantOnDisk: messy, wantFormatted: formatted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTree(t, map[string]string{"a.c": messy})
			opts := baseOptions()
			opts.Check, opts.Stdout = tt.check, tt.stdout

			results, err := FormatPaths(context.Background(), []string{dir}, opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(results) != 1 {
				t.Fatalf("results %+v", results)
			}
			res := results[0]
			if res.Err != nil || !res.Changed {
				t.Fatalf("result %+v", res)
			}
			if got := string(res.Formatted); tt.wantFormatted != "" && got != tt.wantFormatted {
				t.Fatalf("formatted %q, want %q", got, tt.wantFormatted)
			}
			if got := readFile(t, filepath.Join(dir, "a.c")); got != tt.wantOnDisk {
				t.Fatalf("on disk %q, want %q", got, tt.wantOnDisk)
			}
		})
	}
}

func TestFormatPathsCollectsByExtension(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.c":         formatted,
		"inc/a.h":     "int x;\n",
		"notes.txt":   "not C at all {",
		"sub/deep.c":  messy,
		"sub/skip.sg": "fn main() {}",
	})
	results, err := FormatPaths(context.Background(), []string{dir, filepath.Join(dir, "b.c")}, FormatOptions{
		Pipeline: PipelineOptions{Policy: style.Default()},
		Check:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, r := range results {
		rel, _ := filepath.Rel(dir, r.Path)
		names = append(names, filepath.ToSlash(rel))
		if r.Err != nil {
			t.Errorf("%s: %v", rel, r.Err)
		}
		if wantChanged := rel == filepath.Join("sub", "deep.c"); r.Changed != wantChanged {
			t.Errorf("%s: changed=%t", rel, r.Changed)
		}
	}
	if want := []string{"b.c", "inc/a.h", "sub/deep.c"}; !slices.Equal(names, want) {
		t.Fatalf("files %v, want %v", names, want)
	}
}

func TestFormatPathsFailureKeepsFile(t *testing.T) {
	bad := "int f( {\n"
	dir := writeTree(t, map[string]string{"bad.c": bad, "good.c": messy})
	results, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results %+v", results)
	}
	if results[0].Err == nil || results[0].Output == nil || !results[0].Output.Bag.HasErrors() {
		t.Fatalf("bad.c must fail with diagnostics: %+v", results[0])
	}
	if got := readFile(t, filepath.Join(dir, "bad.c")); got != bad {
		t.Fatalf("bad.c rewritten: %q", got)
	}
	if results[1].Err != nil || readFile(t, filepath.Join(dir, "good.c")) != formatted {
		t.Fatalf("good.c not formatted: %+v", results[1])
	}
}

func TestFormatPathsRestoresEncoding(t *testing.T) {
	// Latin-1 "é" в комментарии и CRLF-переводы строк
	raw := "int x;\r\n// caf\xe9\r\nint f(void){return 0;}\r\n"
	dir := writeTree(t, map[string]string{"l1.c": raw})
	opts := baseOptions()
	opts.Encoding = source.EncodingLatin1

	results, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil || results[0].Err != nil {
		t.Fatalf("err=%v result=%+v", err, results)
	}
	want := "int x;\r\n\r\n// caf\xe9\r\nint f(void)\r\n{\r\n\treturn 0;\r\n}\r\n"
	if got := readFile(t, filepath.Join(dir, "l1.c")); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatPathsCache(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.c": messy})
	cache, err := NewFormatCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := baseOptions()
	opts.Check = true
	opts.Cache = cache

	first, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached || !second[0].Cached {
		t.Fatalf("cached flags: first=%t second=%t", first[0].Cached, second[0].Cached)
	}
	if !second[0].Changed || second[0].Output != nil {
		t.Fatalf("cache hit result %+v", second[0])
	}

	opts.Pipeline.Policy.IndentUnit = "  "
	third, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("another policy must miss the cache")
	}
}

func TestFormatPathsProgress(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.c": messy, "b.c": formatted})
	var (
		mu     sync.Mutex
		events = map[string][]Stage{}
		final  = map[string]ProgressEvent{}
	)
	opts := baseOptions()
	opts.Check = true
	opts.Progress = func(ev ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		name := filepath.Base(ev.Path)
		events[name] = append(events[name], ev.Stage)
		if ev.Stage.Final() {
			final[name] = ev
		}
	}
	if _, err := FormatPaths(context.Background(), []string{dir}, opts); err != nil {
		t.Fatal(err)
	}
	want := []Stage{StageQueued, StageExtract, StageParse, StageRender, StageDone}
	for _, name := range []string{"a.c", "b.c"} {
		if !slices.Equal(events[name], want) {
			t.Errorf("%s: stages %v, want %v", name, events[name], want)
		}
	}
	if !final["a.c"].Changed || final["b.c"].Changed {
		t.Fatalf("final events %+v", final)
	}
}

func TestFormatPathsErrors(t *testing.T) {
	empty := t.TempDir()
	if _, err := FormatPaths(context.Background(), []string{empty}, baseOptions()); err == nil {
		t.Fatal("expected error for a tree without sources")
	}
	if _, err := FormatPaths(context.Background(), []string{filepath.Join(empty, "missing.c")}, baseOptions()); err == nil {
		t.Fatal("expected error for a missing path")
	}
	opts := baseOptions()
	opts.Preprocess = true
	if _, err := FormatPaths(context.Background(), []string{empty}, opts); err == nil {
		t.Fatal("preprocess must refuse in-place writes")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FormatPaths(ctx, []string{empty}, baseOptions()); err == nil {
		t.Fatal("expected context error")
	}
}

func TestFormatStdin(t *testing.T) {
	res := FormatStdin(context.Background(), "<stdin>", strings.NewReader(messy), baseOptions())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if string(res.Formatted) != formatted || !res.Changed {
		t.Fatalf("result %+v", res)
	}
}
