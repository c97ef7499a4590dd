package trace

import (
	"io"
	"sync"
)

// DefaultRingSize is used when a ring is created with a non-positive size.
const DefaultRingSize = 4096

// RingTracer keeps the most recent events in memory. In ring mode the
// whole buffer is written out when the command exits; in both mode only
// runs that raised an alert dump it.
type RingTracer struct {
	level Level

	mu     sync.Mutex
	buf    []Event
	start  int // oldest event
	n      int
	alerts int
}

// NewRingTracer returns a ring holding up to size events.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingTracer{level: level, buf: make([]Event, size)}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.Allows(ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if ev.Alert {
		t.alerts++
	}
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = *ev
		t.n++
		return
	}
	// полный буфер: затираем самое старое событие
	t.buf[t.start] = *ev
	t.start = (t.start + 1) % len(t.buf)
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, t.n)
	if end := t.start + t.n; end <= len(t.buf) {
		return append(out, t.buf[t.start:end]...)
	}
	out = append(out, t.buf[t.start:]...)
	return append(out, t.buf[:(t.start+t.n)%len(t.buf)]...)
}

// Alerts counts alert events seen so far, including ones already overwritten.
func (t *RingTracer) Alerts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.alerts
}

// Dump writes the snapshot to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
