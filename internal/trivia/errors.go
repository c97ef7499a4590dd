package trivia

import "fmt"

// ExtractionError reports a block comment that is never closed.
type ExtractionError struct {
	Line int // 0-based line of the opener
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("unterminated block comment starting at line %d", e.Line+1)
}

// AnomalyKind classifies a recoverable reinjection problem.
type AnomalyKind uint8

const (
	// ReinjectionBounds: the record's line is past the end of the formatted output.
	ReinjectionBounds AnomalyKind = iota + 1
)

func (k AnomalyKind) String() string {
	if k == ReinjectionBounds {
		return "reinjection-bounds"
	}
	return fmt.Sprintf("AnomalyKind(%d)", k)
}

// Anomaly describes a record that could not be placed at its line and was
// appended at the end instead.
type Anomaly struct {
	Kind   AnomalyKind
	Record Record
	Macro  bool
	Lines  int // length of the output at the time
}

func (a Anomaly) Error() string {
	what := "comment"
	if a.Macro {
		what = "directive"
	}
	return fmt.Sprintf("%s: %s at line %d is past the end of output (%d lines), appended", a.Kind, what, a.Record.Line+1, a.Lines)
}
