package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cstyle/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	locColor     = color.New(color.Bold)
)

// RenderOptions controls text rendering of a bag.
type RenderOptions struct {
	Color bool
}

// Render writes each diagnostic as "path:line:col: SEVERITY ID: message".
func Render(w io.Writer, fs *source.FileSet, bag *Bag, opts RenderOptions) error {
	if bag == nil {
		return nil
	}
	for _, d := range bag.Items() {
		loc := location(fs, d.Primary)
		sev := d.Severity.String()
		if opts.Color {
			loc = locColor.Sprint(loc)
			sev = severityColor(d.Severity).Sprint(sev)
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sev, d.Code.ID(), d.Message); err != nil {
			return err
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  note: %s: %s\n", location(fs, n.Span), n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func location(fs *source.FileSet, sp source.Span) string {
	if fs == nil {
		return "<input>"
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
