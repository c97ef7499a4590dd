package trivia

import (
	"cmp"
	"slices"
	"strings"
)

// Record is one extracted comment or directive anchored to a 0-based line of
// the clean text.
type Record struct {
	Line int    `json:"line" msgpack:"line"`
	Text string `json:"text" msgpack:"text"`
	// Trailing отмечает комментарий, стоявший после кода на той же строке.
	Trailing bool `json:"trailing,omitempty" msgpack:"trailing,omitempty"`
}

// TextLines splits a multi-line record (block comment, continued directive).
func (r Record) TextLines() []string {
	return strings.Split(r.Text, "\n")
}

// Records is ordered by Line ascending; discovery order equals line order.
type Records []Record

// Item is a record tagged with its origin, used when comments and directives
// are merged into one queue.
type Item struct {
	Record
	Macro bool
}

// Queue merges comments and macros into one line-ordered queue. On the same
// line directives come first.
func Queue(comments, macros Records) []Item {
	out := make([]Item, 0, len(comments)+len(macros))
	for _, m := range macros {
		out = append(out, Item{Record: m, Macro: true})
	}
	for _, c := range comments {
		out = append(out, Item{Record: c})
	}
	slices.SortStableFunc(out, func(a, b Item) int {
		return cmp.Compare(a.Line, b.Line)
	})
	return out
}
