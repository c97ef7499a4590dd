package parser

import (
	"slices"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

// DefaultMaxDepth ограничивает вложенность операторов и выражений.
const DefaultMaxDepth = 512

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	MaxDepth      int
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token // весь поток токенов; последний всегда EOF
	pos      int
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	scopes   []map[string]bool
	depth    int
}

// ParseFile drains lx and builds the syntax tree of one translation unit.
// Diagnostics go to opts.Reporter; the tree is returned even when errors were reported.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		file:     lx.File(),
		toks:     lx.All(),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
		scopes:   []map[string]bool{{}},
	}

	file := p.parseTranslationUnit()
	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = br.Bag
	case *diag.BagReporter:
		bag = br.Bag
	}
	return Result{File: file, Bag: bag}
}

// Failed reports whether any error was seen while parsing.
func (p *Parser) Failed() bool {
	return p.opts.CurrentErrors != 0
}

func (p *Parser) parseTranslationUnit() *ast.File {
	file := &ast.File{Source: p.file}
	start := p.peek().Span
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		before, errs := p.pos, p.opts.CurrentErrors
		node := p.parseExternalDecl()
		if p.opts.CurrentErrors != errs {
			p.resyncTop()
		}
		if node != nil {
			file.Decls = append(file.Decls, node...)
		}
		if p.pos == before {
			p.advance()
		}
	}
	file.Src = start.Cover(p.peek().Span)
	return file
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' или '}' на нулевой глубине скобок.
func (p *Parser) resyncTop() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth <= 0 {
				p.advance()
				if p.at(token.Semicolon) {
					p.advance()
				}
				return
			}
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN смотрит на n токенов вперёд; за концом потока всегда EOF.
func (p *Parser) peekN(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// enter/leave ограничивают глубину рекурсии.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		if p.depth == p.opts.MaxDepth+1 {
			p.err(diag.SynTooDeep, "nesting is too deep")
		}
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}
