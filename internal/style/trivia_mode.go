package style

import "fmt"

// TriviaMode selects how extracted comments and directives get back into
// the formatted text.
type TriviaMode uint8

const (
	// TriviaAnchored emits each record before the first statement at or after
	// its original line, indented like that statement.
	TriviaAnchored TriviaMode = iota
	// TriviaPositional replaces or inserts records at their original line
	// numbers in the formatted output.
	TriviaPositional
)

func (m TriviaMode) String() string {
	switch m {
	case TriviaAnchored:
		return "anchored"
	case TriviaPositional:
		return "positional"
	default:
		return fmt.Sprintf("TriviaMode(%d)", m)
	}
}

// ParseTriviaMode parses "anchored" or "positional".
func ParseTriviaMode(s string) (TriviaMode, error) {
	switch s {
	case "anchored", "":
		return TriviaAnchored, nil
	case "positional":
		return TriviaPositional, nil
	default:
		return TriviaAnchored, fmt.Errorf("unknown trivia mode %q (want anchored|positional)", s)
	}
}

func (m TriviaMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TriviaMode) UnmarshalText(b []byte) error {
	v, err := ParseTriviaMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
