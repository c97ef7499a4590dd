package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
	openSpans   atomic.Int64 // live spans of enabled tracers; reported by heartbeats
)

// NextSeq returns the next global sequence number.
func NextSeq() uint64 {
	return seqCounter.Add(1)
}

// Span is one traced operation. A span of an enabled tracer is live even
// when its scope is filtered out, so that Fail still reports it.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	visible bool // begin was emitted
	done    atomic.Bool
	extra   map[string]string
}

// Begin starts a span under parent (0 for roots).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
		visible: t.Level().ShouldEmit(scope),
	}
	openSpans.Add(1)
	if s.visible {
		t.Emit(&Event{
			Time:     s.started,
			Seq:      NextSeq(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   s.id,
			ParentID: parent,
			Name:     name,
		})
	}
	return s
}

// End closes the span and returns its duration. Only the first End or Fail
// counts.
func (s *Span) End(detail string) time.Duration {
	return s.finish(detail, false)
}

// Fail closes the span as failed. The end event is an alert and is written
// even when the begin event was filtered out.
func (s *Span) Fail(err error) time.Duration {
	detail := "failed"
	if err != nil {
		detail = err.Error()
	}
	return s.finish(detail, true)
}

func (s *Span) finish(detail string, alert bool) time.Duration {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() || s.done.Swap(true) {
		return 0
	}
	openSpans.Add(-1)
	now := time.Now()
	if s.visible || alert {
		s.tracer.Emit(&Event{
			Time:     now,
			Seq:      NextSeq(),
			Kind:     KindSpanEnd,
			Scope:    s.scope,
			SpanID:   s.id,
			ParentID: s.parent,
			Name:     s.name,
			Detail:   detail,
			Alert:    alert,
			Extra:    s.extra,
		})
	}
	return now.Sub(s.started)
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for disabled spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// On reports whether t writes ordinary events of scope. Callers check it
// before building Extra maps on hot paths.
func On(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Point emits an instant event. Kind, Time and Seq are filled in.
func Point(t Tracer, ev Event) {
	if t == nil || !t.Enabled() {
		return
	}
	ev.Kind = KindPoint
	ev.Time = time.Now()
	ev.Seq = NextSeq()
	if !t.Level().Allows(&ev) {
		return
	}
	t.Emit(&ev)
}
