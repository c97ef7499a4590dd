package driver

import (
	"fmt"

	"cstyle/internal/diag"
)

// ParseError reports that the clean text did not parse. The pipeline keeps
// the original text for such files.
type ParseError struct {
	Path string
	Bag  *diag.Bag
}

func (e *ParseError) Error() string {
	first, ok := e.Bag.FirstError()
	if !ok {
		return fmt.Sprintf("%s: parse failed", e.Path)
	}
	n := 0
	for _, d := range e.Bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	if n == 1 {
		return fmt.Sprintf("%s: parse failed: %s", e.Path, first.Message)
	}
	return fmt.Sprintf("%s: parse failed: %s (and %d more)", e.Path, first.Message, n-1)
}

// PreprocessError wraps a failed external preprocessor run.
type PreprocessError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *PreprocessError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("preprocess: %s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("preprocess: %s: %v: %s", e.Cmd, e.Err, e.Stderr)
}

func (e *PreprocessError) Unwrap() error { return e.Err }
