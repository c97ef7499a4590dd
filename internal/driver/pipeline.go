package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/format"
	"cstyle/internal/lexer"
	"cstyle/internal/observ"
	"cstyle/internal/parser"
	"cstyle/internal/source"
	"cstyle/internal/style"
	"cstyle/internal/trace"
	"cstyle/internal/trivia"
)

// PipelineOptions configures formatting of one source text.
type PipelineOptions struct {
	Policy         style.Policy
	MaxDiagnostics int
	// Verify strips the trivia from the final text and reparses it; a
	// changed tree keeps the original text.
	Verify bool
	// Timings appends a per-file OBS6001 report to Output.Bag.
	Timings bool
	// Observe receives every stage boundary; may be nil.
	Observe func(Stage)
}

// Output is the result of formatting one source text. On failure Text holds
// the original input.
type Output struct {
	Path      string
	Text      string
	Changed   bool
	Comments  int
	Macros    int
	Anomalies []trivia.Anomaly
	FileSet   *source.FileSet
	Bag       *diag.Bag
	Timer     *observ.Timer
}

// FormatSource runs extract, parse, render and (in positional mode) reinject
// on raw. Errors are also recorded as diagnostics in Output.Bag.
func FormatSource(ctx context.Context, path, raw string, opts PipelineOptions) (*Output, error) {
	if err := opts.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	out := &Output{
		Path:    path,
		Text:    raw,
		FileSet: source.NewFileSet(),
		Bag:     diag.NewBag(maxDiag),
		Timer:   observ.NewTimer(),
	}
	root, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
	run := pipeline{ctx: ctx, out: out, opts: opts, tracer: trace.FromContext(ctx), parent: root.ID()}

	text, err := run.format(raw)
	if opts.Timings {
		appendTimingDiagnostic(out.Bag, "file", path, out.Timer)
	}
	if err != nil {
		root.Fail(err)
		run.observe(StageFailed)
		return out, err
	}
	out.Text = text
	out.Changed = text != raw
	root.WithExtra("changed", fmt.Sprint(out.Changed)).End("")
	run.observe(StageDone)
	return out, nil
}

type pipeline struct {
	ctx    context.Context
	out    *Output
	opts   PipelineOptions
	tracer trace.Tracer
	parent uint64 // span of the file
	span   uint64 // span of the running phase
}

func (r *pipeline) observe(s Stage) {
	if r.opts.Observe != nil {
		r.opts.Observe(s)
	}
}

// phase runs fn as one timed and traced pipeline step.
func (r *pipeline) phase(stage Stage, fn func() error) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	r.observe(stage)
	sp := trace.Begin(r.tracer, trace.ScopePass, stage.String(), r.parent)
	r.span = sp.ID()
	err := r.out.Timer.Track(stage.String(), fn)
	if err != nil {
		sp.Fail(err)
	} else {
		sp.End("")
	}
	return err
}

func (r *pipeline) format(raw string) (string, error) {
	out := r.out
	pol := r.opts.Policy
	rawID := out.FileSet.AddVirtual(out.Path, []byte(raw))

	var ex trivia.Result
	err := r.phase(StageExtract, func() error {
		var err error
		ex, err = trivia.Extract(raw, trivia.ExtractOptions{LiteralAware: pol.LiteralAwareComments})
		return err
	})
	if err != nil {
		var ee *trivia.ExtractionError
		if errors.As(err, &ee) {
			r.report(diag.TrvUnterminatedBlockComment, diag.SevError, lineSpan(out.FileSet.Get(rawID), ee.Line), ee.Error())
		}
		return "", fmt.Errorf("%s: %w", out.Path, err)
	}
	out.Comments, out.Macros = len(ex.Comments), len(ex.Macros)

	var file *ast.File
	err = r.phase(StageParse, func() error {
		file = r.parse(ex.Clean)
		if out.Bag.HasErrors() {
			return &ParseError{Path: out.Path, Bag: out.Bag}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	var text string
	err = r.phase(StageRender, func() error {
		var err error
		text, err = format.Format(file, format.Options{
			Policy:      pol,
			Comments:    ex.Comments,
			Macros:      ex.Macros,
			Tracer:      r.tracer,
			TraceParent: r.span,
		})
		return err
	})
	if err != nil {
		r.reportFormatError(err)
		return "", fmt.Errorf("%s: %w", out.Path, err)
	}

	if pol.Trivia == style.TriviaPositional {
		err = r.phase(StageReinject, func() error {
			lines := source.SplitLines(strings.TrimSuffix(text, "\n"))
			text = trivia.Reinject(lines, ex.Comments, ex.Macros, r.anomaly) + "\n"
			return nil
		})
		if err != nil {
			return "", err
		}
	}

	if r.opts.Verify {
		err = r.phase(StageVerify, func() error {
			return format.VerifyText(file, text, pol, int(out.Bag.Cap()))
		})
		if errors.Is(err, format.ErrRoundTrip) {
			r.report(diag.FmtRoundTrip, diag.SevError, source.Span{File: file.Source.ID}, err.Error())
			return "", fmt.Errorf("%s: %w", out.Path, err)
		}
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

func (r *pipeline) parse(clean string) *ast.File {
	fs := r.out.FileSet
	id := fs.AddVirtual(r.out.Path, []byte(clean))
	rep := diag.BagReporter{Bag: r.out.Bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})

	maxErrors, err := safecast.Conv[uint](r.out.Bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	res := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: maxErrors})
	return res.File
}

// anomaly degrades a misplaced record to "appended at the end" and reports it.
func (r *pipeline) anomaly(a trivia.Anomaly) {
	r.out.Anomalies = append(r.out.Anomalies, a)
	msg := a.Error()
	record := "comment"
	if a.Macro {
		record = "directive"
	}
	trace.Point(r.tracer, trace.Event{
		Scope:    trace.ScopeFile,
		ParentID: r.span,
		Name:     "reinject-bounds",
		Detail:   a.Record.Text,
		Alert:    true,
		Extra: map[string]string{
			"line":   strconv.Itoa(a.Record.Line + 1),
			"record": record,
			"output": strconv.Itoa(a.Lines),
		},
	})
	r.report(diag.TrvReinjectionBounds, diag.SevWarning, source.Span{}, msg)
}

func (r *pipeline) reportFormatError(err error) {
	var ue *format.UnsupportedNodeKindError
	var de *format.DepthError
	switch {
	case errors.As(err, &ue):
		r.report(diag.FmtUnsupportedNode, diag.SevError, spanOf(ue.Node), err.Error())
	case errors.As(err, &de):
		r.report(diag.FmtTooDeep, diag.SevError, source.Span{}, err.Error())
	}
}

func (r *pipeline) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	r.out.Bag.Add(diag.Diagnostic{Severity: sev, Code: code, Message: msg, Primary: sp})
}

func spanOf(n ast.Node) source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Span()
}

// lineSpan returns an empty span at the start of the 0-based line of f.
func lineSpan(f *source.File, line int) source.Span {
	if line <= 0 || len(f.LineIdx) == 0 {
		return source.Span{File: f.ID}
	}
	idx := min(line, len(f.LineIdx)) - 1
	off := f.LineIdx[idx] + 1
	return source.Span{File: f.ID, Start: off, End: off}
}
