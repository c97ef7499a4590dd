package format

import "strings"

type outLine struct {
	text  string
	trail string // хвостовой комментарий, всегда последний на строке
}

// Writer accumulates formatted output line by line. Indentation is passed in
// by the caller on every Line call; the writer keeps no indent level.
type Writer struct {
	lines []outLine
	// trail ждёт следующей строки, открытой через Line
	trail []string
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of lines written so far.
func (w *Writer) Len() int {
	return len(w.lines)
}

// Line starts a new line with indent + text. Text may hold '\n': the
// following parts are written as is and must carry their own indentation.
// Pending trailing comments attach to the first of the new lines.
func (w *Writer) Line(indent, text string) {
	parts := strings.Split(text, "\n")
	first := len(w.lines)
	w.lines = append(w.lines, outLine{text: indent + parts[0]})
	for _, p := range parts[1:] {
		w.lines = append(w.lines, outLine{text: p})
	}
	if len(w.trail) > 0 {
		w.attach(first, w.trail...)
		w.trail = w.trail[:0]
	}
}

// Append adds s to the code part of the last line.
func (w *Writer) Append(s string) {
	if len(w.lines) == 0 {
		w.Line("", s)
		return
	}
	parts := strings.Split(s, "\n")
	last := &w.lines[len(w.lines)-1]
	last.text += parts[0]
	for _, p := range parts[1:] {
		w.lines = append(w.lines, outLine{text: p})
	}
}

// JoinFrom merges line i into line i-1 with sep between them; used to pull
// a statement onto its header line ("if (x) y;", "} else {").
func (w *Writer) JoinFrom(i int, sep string) {
	if i <= 0 || i >= len(w.lines) {
		return
	}
	prev, cur := w.lines[i-1], w.lines[i]
	merged := outLine{text: prev.text + sep + strings.TrimLeft(cur.text, " \t"), trail: prev.trail}
	if cur.trail != "" {
		merged.trail = joinTrail(merged.trail, cur.trail)
	}
	w.lines[i-1] = merged
	w.lines = append(w.lines[:i], w.lines[i+1:]...)
}

// LastBlank reports whether the output is empty or ends with a blank line.
func (w *Writer) LastBlank() bool {
	return len(w.lines) == 0 || w.lines[len(w.lines)-1] == (outLine{})
}

// Trail queues comments for the next line opened by Line.
func (w *Writer) Trail(comments ...string) {
	w.trail = append(w.trail, comments...)
}

// AttachLast puts comments at the end of the last line.
func (w *Writer) AttachLast(comments ...string) {
	if len(w.lines) == 0 {
		w.Line("", "")
	}
	w.attach(len(w.lines)-1, comments...)
}

func (w *Writer) attach(i int, comments ...string) {
	for _, c := range comments {
		w.lines[i].trail = joinTrail(w.lines[i].trail, c)
	}
}

func joinTrail(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

// Blank ensures the output ends with at least n blank lines. At the very
// start of output nothing is written unless leading is set.
func (w *Writer) Blank(n int, leading bool) {
	if len(w.lines) == 0 && !leading {
		return
	}
	have := 0
	for i := len(w.lines) - 1; i >= 0 && w.lines[i] == (outLine{}); i-- {
		have++
	}
	for ; have < n; have++ {
		w.lines = append(w.lines, outLine{})
	}
}

// Lines returns the rendered lines; trailing comments are separated from
// code by one space.
func (w *Writer) Lines() []string {
	out := make([]string, len(w.lines))
	for i, l := range w.lines {
		switch {
		case l.trail == "":
			out[i] = l.text
		case strings.TrimSpace(l.text) == "":
			out[i] = l.text + l.trail
		default:
			out[i] = l.text + " " + l.trail
		}
	}
	return out
}

// TrimBlank drops blank lines at both ends of the output.
func (w *Writer) TrimBlank() {
	for len(w.lines) > 0 && w.lines[len(w.lines)-1] == (outLine{}) {
		w.lines = w.lines[:len(w.lines)-1]
	}
	start := 0
	for start < len(w.lines) && w.lines[start] == (outLine{}) {
		start++
	}
	w.lines = w.lines[start:]
}

// String joins the lines and terminates the output with a newline.
func (w *Writer) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.Lines(), "\n") + "\n"
}
