package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

type declMode uint8

const (
	declNamed    declMode = iota // имя обязательно
	declOptional                 // параметры: имя может отсутствовать
	declAbstract                 // type name: имени нет
)

type declOpKind uint8

const (
	opPtr declOpKind = iota
	opArray
	opFunc
)

type declOp struct {
	kind   declOpKind
	span   source.Span
	quals  []string
	dim    ast.Expr
	params *ast.ParamList
}

// declarator is a parsed declarator before it is attached to a base type.
// ops lists what the name is, outermost first: for "*a[3]" that is
// [array, pointer].
type declarator struct {
	name     string
	nameSpan source.Span
	ops      []declOp
}

func (d *declarator) isFunc() bool {
	return len(d.ops) > 0 && d.ops[0].kind == opFunc
}

func (d *declarator) params() *ast.ParamList {
	if d.isFunc() {
		return d.ops[0].params
	}
	return nil
}

// build wraps the base type from specs in the declarator layers.
func (d *declarator) build(specs *declSpecs) ast.Type {
	sp := specs.span
	if d.name != "" {
		sp = sp.Cover(d.nameSpan)
	}
	var t ast.Type = &ast.TypeDecl{Pos: ast.At(sp), DeclName: d.name, Quals: specs.quals, Type: specs.spec}
	for i := len(d.ops) - 1; i >= 0; i-- {
		op := d.ops[i]
		switch op.kind {
		case opPtr:
			t = &ast.PtrDecl{Pos: ast.At(op.span), Quals: op.quals, Type: t}
		case opArray:
			t = &ast.ArrayDecl{Pos: ast.At(op.span), Type: t, Dim: op.dim}
		case opFunc:
			t = &ast.FuncDecl{Pos: ast.At(op.span), Params: op.params, Type: t}
		}
	}
	return t
}

func (p *Parser) parseDeclarator(mode declMode) (declarator, bool) {
	var d declarator
	if !p.enter() {
		p.leave()
		return d, false
	}
	defer p.leave()

	var ptrs []declOp
	for p.at(token.Star) {
		st := p.advance().Span
		var quals []string
		for p.peek().IsQualifier() {
			quals = append(quals, p.advance().Text)
		}
		ptrs = append(ptrs, declOp{kind: opPtr, span: p.spanFrom(st), quals: quals})
	}

	switch {
	case p.at(token.Ident) && mode != declAbstract:
		tok := p.advance()
		d.name, d.nameSpan = tok.Text, tok.Span
	case p.at(token.LParen) && p.nestedDeclaratorAhead(mode):
		p.advance()
		inner, ok := p.parseDeclarator(mode)
		if !ok {
			return d, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close declarator"); !ok {
			return d, false
		}
		d = inner
	default:
		if mode == declNamed {
			p.err(diag.SynExpectIdentifier, "expected identifier in declarator, got "+describe(p.peek()))
			return d, false
		}
	}

suffixes:
	for {
		switch {
		case p.at(token.LBracket):
			st := p.advance().Span
			var dim ast.Expr
			if !p.at(token.RBracket) {
				if dim = p.parseAssignment(); dim == nil {
					return d, false
				}
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array size"); !ok {
				return d, false
			}
			d.ops = append(d.ops, declOp{kind: opArray, span: p.spanFrom(st), dim: dim})
		case p.at(token.LParen):
			st := p.peek().Span
			params, ok := p.parseParamList()
			if !ok {
				return d, false
			}
			d.ops = append(d.ops, declOp{kind: opFunc, span: p.spanFrom(st), params: params})
		default:
			break suffixes
		}
	}

	// ближайшая к имени звёздочка применяется первой
	for i := len(ptrs) - 1; i >= 0; i-- {
		d.ops = append(d.ops, ptrs[i])
	}
	return d, true
}

// nestedDeclaratorAhead decides whether '(' opens a parenthesized declarator
// rather than a parameter list.
func (p *Parser) nestedDeclaratorAhead(mode declMode) bool {
	next := p.peekN(1)
	switch mode {
	case declNamed:
		return true
	case declOptional:
		if next.Kind == token.Ident && !p.isTypedefName(next.Text) {
			return true
		}
	}
	return next.Kind == token.Star || next.Kind == token.LBracket
}

// parseParamList parses "( ... )". An empty list yields nil.
func (p *Parser) parseParamList() (*ast.ParamList, bool) {
	lp := p.advance()
	if p.at(token.RParen) {
		p.advance()
		return nil, true
	}

	list := &ast.ParamList{}
	for {
		if p.at(token.Ellipsis) {
			tok := p.advance()
			list.Params = append(list.Params, &ast.EllipsisParam{Pos: ast.At(tok.Span)})
			break
		}
		start := p.peek().Span
		specs, ok := p.parseDeclSpecs(true)
		if !ok {
			return nil, false
		}
		d, ok := p.parseDeclarator(declOptional)
		if !ok {
			return nil, false
		}
		typ := d.build(&specs)
		if d.name == "" {
			list.Params = append(list.Params, &ast.Typename{Pos: ast.At(p.spanFrom(start)), Type: typ})
		} else {
			list.Params = append(list.Params, &ast.Decl{
				Pos:     ast.At(p.spanFrom(start)),
				Name:    d.name,
				Storage: specs.storage,
				Type:    typ,
			})
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	list.Pos = ast.At(p.spanFrom(lp.Span))
	return list, true
}
