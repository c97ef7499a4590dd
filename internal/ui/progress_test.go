package ui

import (
	"errors"
	"strings"
	"testing"

	"cstyle/internal/driver"
)

func TestProgressModelStatuses(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	m := NewProgressModel("cstyle fmt", []string{"a.c", "b.c"}, events).(*progressModel)

	steps := []struct {
		ev     driver.ProgressEvent
		status string
	}{
		{driver.ProgressEvent{Path: "a.c", Stage: driver.StageParse}, "parsing"},
		{driver.ProgressEvent{Path: "a.c", Stage: driver.StageDone, Changed: true}, "changed"},
		{driver.ProgressEvent{Path: "b.c", Stage: driver.StageDone, Cached: true}, "cached"},
		{driver.ProgressEvent{Path: "c.c", Stage: driver.StageFailed, Err: errors.New("boom")}, "error"},
	}
	for _, st := range steps {
		m.Update(eventMsg(st.ev))
		idx := m.index[st.ev.Path]
		if got := m.items[idx].status; got != st.status {
			t.Fatalf("%s: status %q, want %q", st.ev.Path, got, st.status)
		}
	}
	if len(m.items) != 3 {
		t.Fatalf("unknown file must be appended, got %d items", len(m.items))
	}
	if m.stageLabel != "3/3, 1 failed" {
		t.Fatalf("label %q", m.stageLabel)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: cstyle fmt", "changed", "cached", "error", "a.c"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.c", 20, "short.c"},
		{"very/long/path/file.c", 10, "very/lo..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
