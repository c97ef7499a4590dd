package format

import (
	"strings"

	"cstyle/internal/trivia"
)

// Привязка комментариев и директив к дереву (anchored mode).
// Записи выводятся перед первым узлом, чья строка не меньше строки записи;
// хвостовой однострочный комментарий дописывается в конец первой строки узла,
// начавшегося на той же строке.

func attachable(it trivia.Item) bool {
	return !it.Macro && it.Trailing && !strings.Contains(it.Text, "\n")
}

// anchor emits the records that precede a node starting at line and queues
// the node's trailing comments for its first output line. indent 0 means
// file scope, where source gaps are kept as one blank line.
func (p *printer) anchor(line, indent int) {
	if !p.anchored || line < 0 {
		return
	}
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		if it.Line > line || it.Line == line && attachable(it) {
			break
		}
		p.next++
		if p.attachToPrev(it) {
			continue
		}
		if indent == 0 {
			p.gap(it.Line)
		}
		p.w.Line("", strings.Join(p.itemLines(it, indent), "\n"))
		if indent == 0 {
			p.lastTop = it.Line + strings.Count(it.Text, "\n")
		}
	}
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		if it.Line != line || !attachable(it) {
			break
		}
		p.next++
		p.w.Trail(it.Text)
	}
}

// attachToPrev puts a trailing comment of a multi-line statement after the
// statement's last line.
func (p *printer) attachToPrev(it trivia.Item) bool {
	if !attachable(it) || it.Line != p.lastEnd || p.w.LastBlank() {
		return false
	}
	p.w.AttachLast(it.Text)
	return true
}

// anchorInline attaches trailing comments of a node printed on the current
// last line ("} else {", "if (x) y;").
func (p *printer) anchorInline(line int) {
	if !p.anchored || line < 0 {
		return
	}
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		if it.Line != line || !attachable(it) {
			break
		}
		p.next++
		p.w.AttachLast(it.Text)
	}
}

// anchorText is anchor for nodes rendered into a string (struct members,
// enum values): every emitted line is returned prefixed with '\n'.
func (p *printer) anchorText(line, indent int) string {
	if !p.anchored || line < 0 {
		return ""
	}
	var b strings.Builder
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		if it.Line > line || it.Line == line && attachable(it) {
			break
		}
		p.next++
		for _, l := range p.itemLines(it, indent) {
			b.WriteString("\n" + l)
		}
	}
	return b.String()
}

// trailText returns trailing comments of line as " // ..." for string-rendered nodes.
func (p *printer) trailText(line int) string {
	if !p.anchored || line < 0 {
		return ""
	}
	var b strings.Builder
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		if it.Line != line || !attachable(it) {
			break
		}
		p.next++
		b.WriteString(" " + it.Text)
	}
	return b.String()
}

// itemLines renders one record as full output lines. Directives stay at
// column 0; comment continuation lines starting with '*' get one extra
// space so the stars line up under "/*".
func (p *printer) itemLines(it trivia.Item, indent int) []string {
	lines := it.TextLines()
	if it.Macro {
		return lines
	}
	ind := p.indent(indent)
	for i, l := range lines {
		if i > 0 && strings.HasPrefix(l, "*") {
			l = " " + l
		}
		lines[i] = ind + l
	}
	return lines
}

// gap keeps one blank line where the source had a gap between file-scope items.
func (p *printer) gap(line int) {
	if !p.anchored || line < 0 || p.lastTop < 0 {
		return
	}
	if line > p.lastTop+1 {
		p.w.Blank(1, false)
	}
}

// flushAll emits every record not yet placed, at file scope.
func (p *printer) flushAll() {
	if !p.anchored {
		return
	}
	for p.next < len(p.queue) {
		it := p.queue[p.next]
		p.next++
		if p.attachToPrev(it) {
			continue
		}
		p.gap(it.Line)
		p.w.Line("", strings.Join(p.itemLines(it, 0), "\n"))
		p.lastTop = it.Line + strings.Count(it.Text, "\n")
	}
}
