package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"cstyle/internal/driver"
	"cstyle/internal/source"
	"cstyle/internal/style"
	"cstyle/internal/trace"
)

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"AUTO", uiModeAuto, false},
		{" on ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := readUIMode(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Fatalf("readUIMode(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
	if !shouldUseTUI(uiModeOn, false) || shouldUseTUI(uiModeOff, true) {
		t.Fatal("explicit modes must win over TTY detection")
	}
	if shouldUseTUI(uiModeAuto, false) {
		t.Fatal("a single file never gets the progress view")
	}
	dir := t.TempDir()
	if !isBatch([]string{dir}) || isBatch([]string{filepath.Join(dir, "a.c")}) || !isBatch([]string{"a.c", "b.c"}) {
		t.Fatal("isBatch")
	}
}

func fmtTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "fmt"}
	registerFmtFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestFmtOptionsMergesConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cfg := style.DefaultConfig()
	cfg.Fmt.Jobs = 3
	cfg.Fmt.Encoding = "latin1"
	cfg.Policy.Trivia = style.TriviaAnchored

	tests := []struct {
		name      string
		args      []string
		jobs      int
		trivia    style.TriviaMode
		enc       source.Encoding
		wantCache bool
	}{
		{"config only", nil, 3, style.TriviaAnchored, source.EncodingLatin1, true},
		{"flags win", []string{"--jobs=1", "--trivia=positional", "--encoding=utf-8"}, 1, style.TriviaPositional, source.EncodingUTF8, true},
		{"no cache", []string{"--no-cache"}, 3, style.TriviaAnchored, source.EncodingLatin1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := fmtTestCmd(t, tt.args...)
			noCache, _ := cmd.Flags().GetBool("no-cache")
			opts, err := fmtOptions(cmd, cfg, fmtFlags{noCache: noCache, maxDiagnostics: 10})
			if err != nil {
				t.Fatal(err)
			}
			if opts.Jobs != tt.jobs || opts.Pipeline.Policy.Trivia != tt.trivia || opts.Encoding != tt.enc {
				t.Fatalf("opts %+v", opts)
			}
			if (opts.Cache != nil) != tt.wantCache {
				t.Fatalf("cache %v", opts.Cache)
			}
			if opts.CPP != driver.DefaultCPP || opts.Pipeline.MaxDiagnostics != 10 {
				t.Fatalf("opts %+v", opts)
			}
		})
	}

	if _, err := fmtOptions(fmtTestCmd(t, "--trivia=sideways"), cfg, fmtFlags{}); err == nil {
		t.Fatal("expected trivia error")
	}
}

func TestRenderFmtText(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.c", Changed: true},
		{Path: "b.c"},
		{Path: "c.c", Err: errors.New("c.c: parse failed")},
	}
	tests := []struct {
		name         string
		check, quiet bool
		want         string
	}{
		{"write", false, false, "reformatted a.c\n"},
		{"check", true, false, "a.c\n"},
		{"quiet", true, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			hasErrors, hasChanges := renderFmtText(&out, &errOut, results, tt.check, tt.quiet)
			if !hasErrors || !hasChanges {
				t.Fatalf("flags errors=%t changes=%t", hasErrors, hasChanges)
			}
			if out.String() != tt.want {
				t.Fatalf("stdout %q, want %q", out.String(), tt.want)
			}
			if !strings.Contains(errOut.String(), "c.c: parse failed") {
				t.Fatalf("stderr %q", errOut.String())
			}
		})
	}
}

func TestRenderFmtJSON(t *testing.T) {
	var out bytes.Buffer
	results := []driver.FormatResult{{Path: "a.c", Changed: true, Cached: true}}
	if err := renderFmtJSON(&out, results, true); err != nil {
		t.Fatal(err)
	}
	var payload []map[string]any
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload) != 1 || payload[0]["path"] != "a.c" || payload[0]["changed"] != true || payload[0]["check"] != true {
		t.Fatalf("payload %v", payload)
	}
}

func TestRenderVersion(t *testing.T) {
	var out bytes.Buffer
	info := versionInfo{Version: "9.9.9", GitCommit: "abc"}
	renderVersionPretty(&out, info, versionOptions{showHash: true, showDate: true})
	want := "cstyle 9.9.9\ncommit:  abc\nbuilt:   unknown\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestFlushRing(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name       string
		mode       trace.StorageMode
		alert      bool
		path       string
		wantStderr bool
		wantFile   bool
	}{
		{"ring to file", trace.ModeRing, false, filepath.Join(dir, "ring.ndjson"), false, true},
		{"ring to stderr", trace.ModeRing, false, "-", true, false},
		{"both without alerts", trace.ModeBoth, false, "-", false, false},
		{"both after alert", trace.ModeBoth, true, "-", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var streamed, stderr bytes.Buffer
			tracer, err := trace.New(trace.Config{Level: trace.LevelDetail, Mode: tt.mode, Output: &streamed, RingSize: 8})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			trace.Begin(tracer, trace.ScopeFile, "file:a.c", 0).End("")
			if tt.alert {
				trace.Point(tracer, trace.Event{Scope: trace.ScopeFile, Name: "reinject-bounds", Alert: true})
			}

			cmd := &cobra.Command{}
			cmd.SetErr(&stderr)
			if err := flushRing(cmd, tracer, tt.mode, tt.path); err != nil {
				t.Fatalf("flushRing: %v", err)
			}
			if got := strings.Contains(stderr.String(), "file:a.c"); got != tt.wantStderr {
				t.Fatalf("stderr dump = %t, want %t:\n%s", got, tt.wantStderr, stderr.String())
			}
			if !tt.wantFile {
				return
			}
			data, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("read dump: %v", err)
			}
			var ev map[string]any
			first, _, _ := strings.Cut(string(data), "\n")
			if err := json.Unmarshal([]byte(first), &ev); err != nil || ev["name"] != "file:a.c" {
				t.Fatalf("ndjson dump %q: %v", first, err)
			}
		})
	}
}
