package trivia

import (
	"slices"
	"strings"

	"cstyle/internal/source"
)

// Reinject puts records back into formatted lines by line number.
//
// Each comment replaces the line at its index and takes the indentation of
// the line below it. Comments are applied first because replacement does not
// shift indices; then each directive is inserted verbatim at its index.
// A record past the end is appended and reported through onAnomaly (may be nil).
func Reinject(lines []string, comments, macros Records, onAnomaly func(Anomaly)) string {
	out := slices.Clone(lines)
	report := func(rec Record, macro bool) {
		if onAnomaly != nil {
			onAnomaly(Anomaly{Kind: ReinjectionBounds, Record: rec, Macro: macro, Lines: len(out)})
		}
	}

	for _, c := range comments {
		if c.Line < 0 || c.Line >= len(out) {
			report(c, false)
			out = append(out, c.Text)
			continue
		}
		indent := ""
		if c.Line+1 < len(out) {
			indent = source.LeadingWhitespace(out[c.Line+1])
		}
		out[c.Line] = IndentText(c.Text, indent)
	}

	for _, m := range macros {
		if m.Line < 0 || m.Line > len(out) {
			report(m, true)
			out = append(out, m.Text)
			continue
		}
		out = slices.Insert(out, m.Line, m.Text)
	}
	return strings.Join(out, "\n")
}

// IndentText prefixes every line of text with indent.
func IndentText(text, indent string) string {
	if indent == "" {
		return text
	}
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = indent + p
	}
	return strings.Join(parts, "\n")
}
