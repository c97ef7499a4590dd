package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // span start
	KindSpanEnd                   // span end
	KindPoint                     // instant event
	KindHeartbeat                 // periodic liveness signal
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event. Levels compare scopes by
// their numeric value, so the order here is the filtering order, not the
// nesting order (a file span contains pass spans).
type Scope uint8

const (
	// ScopeDriver covers whole commands: a fmt run over many files.
	ScopeDriver Scope = iota + 1
	// ScopePass covers pipeline phases (extract, parse, render, reinject, verify).
	ScopePass
	// ScopeFile covers one source file and its trivia anomalies.
	ScopeFile
	// ScopeNode covers top-level declarations written by the printer.
	ScopeNode
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// depth is the nesting depth used by the text format.
func (s Scope) depth() int {
	switch s {
	case ScopeFile:
		return 1
	case ScopePass:
		return 2
	case ScopeNode:
		return 3
	default:
		return 0
	}
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // "render", "file:main.c", "reinject-bounds", ...
	Detail   string
	// Alert marks failed spans and trivia anomalies; LevelError keeps only these.
	Alert    bool
	Extra    map[string]string
}
