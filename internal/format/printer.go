package format

import (
	"errors"
	"strconv"

	"cstyle/internal/ast"
	"cstyle/internal/style"
	"cstyle/internal/trace"
	"cstyle/internal/trivia"
)

// DefaultMaxDepth bounds statement and expression nesting during rendering.
const DefaultMaxDepth = 512

// Options controls one render pass.
type Options struct {
	Policy style.Policy
	// Comments and Macros are emitted by the printer itself when
	// Policy.Trivia is anchored. In positional mode they are ignored and
	// the caller runs trivia.Reinject on the result.
	Comments trivia.Records
	Macros   trivia.Records
	MaxDepth int
	// Tracer receives a ScopeNode point per top-level declaration under
	// TraceParent; nil disables.
	Tracer      trace.Tracer
	TraceParent uint64
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Policy.IndentUnit == "" {
		o.Policy.IndentUnit = "\t"
	}
	return o
}

type printer struct {
	file     *ast.File
	w        *Writer
	pol      style.Policy
	depth    int
	maxDepth int

	tracer      trace.Tracer
	traceParent uint64

	anchored bool
	queue    []trivia.Item
	next     int // первая ещё не выведенная запись queue
	lastTop  int // последняя исходная строка, выведенная на верхнем уровне
	lastEnd  int // последняя строка последнего напечатанного оператора
}

// Render prints file under policy without trivia.
func Render(file *ast.File, policy style.Policy) (string, error) {
	return Format(file, Options{Policy: policy})
}

// Format prints file. The result ends with a newline unless it is empty.
func Format(file *ast.File, opt Options) (out string, err error) {
	if file == nil {
		return "", errors.New("format: nil file")
	}
	opt = opt.withDefaults()
	p := newPrinter(file, opt)
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			out, err = "", b.err
		}
	}()

	p.printFile()
	return p.w.String(), nil
}

// RenderNode prints a single node at indent level 0. Declarations and
// expression statements get their ';', bare expressions and types do not.
func RenderNode(n ast.Node, policy style.Policy) (out string, err error) {
	if f, ok := n.(*ast.File); ok {
		return Render(f, policy)
	}
	p := newPrinter(nil, Options{Policy: policy}.withDefaults())
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			out, err = "", b.err
		}
	}()

	p.node(n, 0)
	return p.w.String(), nil
}

func newPrinter(file *ast.File, opt Options) *printer {
	p := &printer{
		file:     file,
		w:        NewWriter(),
		pol:      opt.Policy,
		maxDepth: opt.MaxDepth,
		lastTop:  -1,
		lastEnd:  -1,

		tracer:      opt.Tracer,
		traceParent: opt.TraceParent,
	}
	if opt.Policy.Trivia == style.TriviaAnchored {
		p.anchored = true
		p.queue = trivia.Queue(opt.Comments, opt.Macros)
	}
	return p
}

func (p *printer) indent(level int) string {
	return p.pol.Indent(level)
}

func (p *printer) printFile() {
	for _, d := range p.file.Decls {
		line := p.lineOf(d)
		fn, isFunc := d.(*ast.FuncDef)
		if isFunc {
			p.w.Blank(p.pol.BlankLinesBetweenFuncs, !p.anchored)
		}
		p.anchor(line, 0)
		p.gap(line)
		if isFunc {
			p.funcDef(fn)
		} else {
			p.topDecl(d)
		}
		if end := p.endLineOf(d); end >= 0 {
			p.lastTop = end
		}
		p.traceDecl(d, line)
		if isFunc {
			p.w.Blank(p.pol.BlankLinesBetweenFuncs, true)
		}
	}
	p.flushAll()
	if p.anchored {
		p.w.TrimBlank()
	}
}

// traceDecl: исходная строка и число строк вывода после объявления.
func (p *printer) traceDecl(d ast.Node, line int) {
	if !trace.On(p.tracer, trace.ScopeNode) {
		return
	}
	trace.Point(p.tracer, trace.Event{
		Scope:    trace.ScopeNode,
		ParentID: p.traceParent,
		Name:     d.Kind().String(),
		Extra: map[string]string{
			"line": strconv.Itoa(line + 1),
			"out":  strconv.Itoa(p.w.Len()),
		},
	})
}

func (p *printer) topDecl(n ast.Node) {
	s, ok := n.(ast.Stmt)
	if !ok {
		p.unsupported(n)
	}
	p.stmt(s, 0)
}

// funcDef: сигнатура, тело с принудительным нулевым отступом.
func (p *printer) funcDef(fd *ast.FuncDef) {
	p.enter()
	defer p.leave()

	p.w.Line("", p.declString(fd.Decl, 0))
	if fd.Body == nil {
		p.w.Append(";")
		return
	}
	if p.pol.FuncBraceNewLine {
		p.w.Line("", "{")
	} else {
		p.w.Append(" {")
	}
	p.blockBody(fd.Body, 0)
}

// node dispatches any node kind; used by RenderNode.
func (p *printer) node(n ast.Node, indent int) {
	switch v := n.(type) {
	case *ast.FuncDef:
		p.funcDef(v)
	case ast.Stmt:
		p.stmt(v, indent)
	case ast.Expr:
		p.w.Line(p.indent(indent), p.expr(v, 0))
	case ast.Type:
		p.w.Line(p.indent(indent), p.typeString(v, indent))
	case ast.TypeSpec:
		p.w.Line(p.indent(indent), p.typeSpec(v, indent))
	case *ast.Enumerator:
		p.w.Line(p.indent(indent), p.enumerator(v))
	case *ast.ParamList:
		p.w.Line(p.indent(indent), p.params(v))
	case *ast.EllipsisParam:
		p.w.Line(p.indent(indent), "...")
	default:
		p.unsupported(n)
	}
}

func (p *printer) lineOf(n ast.Node) int {
	if p.file == nil {
		return -1
	}
	return p.file.LineOf(n)
}

func (p *printer) endLineOf(n ast.Node) int {
	if p.file == nil {
		return -1
	}
	return p.file.EndLineOf(n)
}
