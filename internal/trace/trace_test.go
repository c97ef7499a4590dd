package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLevelAllows(t *testing.T) {
	tests := []struct {
		level Level
		ev    Event
		want  bool
	}{
		{LevelOff, Event{Scope: ScopeDriver, Alert: true}, false},
		{LevelError, Event{Scope: ScopeDriver}, false},
		{LevelError, Event{Scope: ScopeNode, Alert: true}, true},
		{LevelError, Event{Scope: ScopeDriver, Kind: KindHeartbeat}, true},
		{LevelPhase, Event{Scope: ScopePass}, true},
		{LevelPhase, Event{Scope: ScopeFile}, false},
		{LevelDetail, Event{Scope: ScopeFile}, true},
		{LevelDetail, Event{Scope: ScopeNode}, false},
		{LevelDebug, Event{Scope: ScopeNode}, true},
	}
	for _, tt := range tests {
		name := tt.level.String() + "/" + tt.ev.Scope.String()
		if tt.ev.Alert {
			name += "/alert"
		}
		t.Run(name, func(t *testing.T) {
			if got := tt.level.Allows(&tt.ev); got != tt.want {
				t.Fatalf("Allows = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestStreamTracerSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	sp := Begin(tr, ScopePass, "render", 0)
	Point(tr, Event{Scope: ScopeFile, Name: "reinject-bounds", Detail: "line 40", ParentID: sp.ID()})
	Point(tr, Event{Scope: ScopeNode, Name: "hidden", ParentID: sp.ID()})
	sp.WithExtra("lines", "12").WithExtra("file", "a.c").End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 events, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "    → render") {
		t.Errorf("begin line %q", lines[0])
	}
	if !strings.Contains(lines[1], "  • reinject-bounds (line 40)") {
		t.Errorf("point line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "← render (ok) {file=a.c, lines=12}") {
		t.Errorf("end line %q", lines[2])
	}
}

func TestFailedSpanAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)
	ok := Begin(tr, ScopePass, "parse", 0)
	ok.End("")
	bad := Begin(tr, ScopePass, "render", 0)
	if bad.ID() == 0 {
		t.Fatal("span of an enabled tracer must be live below its level")
	}
	bad.Fail(errors.New("nesting too deep"))
	bad.End("again")

	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.Count(out, "\n") != 0 {
		t.Fatalf("expected only the failure, got:\n%s", out)
	}
	if !strings.Contains(out, "! ← render (nesting too deep)") {
		t.Fatalf("failure line %q", out)
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	Begin(tr, ScopeDriver, "fmt", 0).End("")
	Point(tr, Event{
		Scope: ScopeFile,
		Name:  "reinject-bounds",
		Alert: true,
		Extra: map[string]string{"line": "6", "record": "comment"},
	})

	var events []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev map[string]any
		if err := json.Unmarshal([]byte(l), &ev); err != nil {
			t.Fatalf("invalid json %q: %v", l, err)
		}
		events = append(events, ev)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0]["name"] != "fmt" || events[0]["scope"] != "driver" {
		t.Fatalf("unexpected event %v", events[0])
	}
	extra, _ := events[2]["extra"].(map[string]any)
	if events[2]["alert"] != true || extra["line"] != "6" || extra["record"] != "comment" {
		t.Fatalf("anomaly event %v", events[2])
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(tr, Event{Scope: ScopeFile, Name: name, Alert: name == "a"})
	}
	snap := tr.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot %+v", snap)
	}
	if tr.Alerts() != 1 {
		t.Fatalf("alerts = %d, want 1 after the alert was overwritten", tr.Alerts())
	}
	if snap[0].Seq >= snap[1].Seq {
		t.Fatalf("sequence must grow: %d, %d", snap[0].Seq, snap[1].Seq)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context must yield Nop")
	}
	tr := NewRingTracer(16, LevelDetail)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatal("tracer lost in context")
	}

	batch, ctx := StartSpan(ctx, ScopeDriver, "format-paths")
	file, fctx := StartSpan(ctx, ScopeFile, "file:a.c")
	if CurrentSpan(fctx).SpanID != file.ID() || CurrentSpan(ctx).SpanID != batch.ID() {
		t.Fatal("current span not propagated")
	}
	if FromContext(fctx) != Tracer(tr) {
		t.Fatal("tracer lost by StartSpan")
	}
	file.End("")
	batch.End("")

	snap := tr.Snapshot()
	if len(snap) != 4 || snap[1].ParentID != batch.ID() {
		t.Fatalf("events %+v", snap)
	}

	sp := Begin(Nop, ScopePass, "x", 0)
	if sp.End("") != 0 {
		t.Fatal("nop span must not measure")
	}
}

func TestNewByMode(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode     StorageMode
		wantRing bool
	}{
		{ModeStream, false},
		{ModeRing, true},
		{ModeBoth, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tr, err := New(Config{Level: LevelPhase, Mode: tt.mode, Output: &buf})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := RingOf(tr) != nil; got != tt.wantRing {
				t.Fatalf("RingOf = %t, want %t", got, tt.wantRing)
			}
		})
	}
	if tr, _ := New(Config{Level: LevelOff}); tr != Nop {
		t.Fatal("level off must yield Nop")
	}
}

func TestHeartbeatReportsOpenSpans(t *testing.T) {
	tr := NewRingTracer(64, LevelPhase)
	sp := Begin(tr, ScopePass, "render", 0)
	hb := StartHeartbeat(tr, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(tr.Snapshot()) < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()
	sp.End("")

	var beat *Event
	for _, ev := range tr.Snapshot() {
		if ev.Kind == KindHeartbeat {
			beat = &ev
			break
		}
	}
	if beat == nil {
		t.Fatal("no heartbeat recorded")
	}
	if beat.Extra["open_spans"] == "" || beat.Extra["open_spans"] == "0" {
		t.Fatalf("open_spans = %q with a span open", beat.Extra["open_spans"])
	}
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatal("disabled tracer must not beat")
	}
}

func TestParseHelpers(t *testing.T) {
	if l, err := ParseLevel("DETAIL"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel: %v %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode: %v %v", m, err)
	}
	for path, want := range map[string]Format{"-": FormatText, "t.ndjson": FormatNDJSON, "t.jsonl": FormatNDJSON, "t.log": FormatText} {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %d, want %d", path, got, want)
		}
	}
}
