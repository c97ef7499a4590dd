package parser

import (
	"strings"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

// parseExpr parses a full expression including the comma operator.
func (p *Parser) parseExpr() ast.Expr {
	start := p.peek().Span
	first := p.parseAssignment()
	if first == nil {
		return nil
	}
	if !p.at(token.Comma) {
		return first
	}
	list := &ast.ExprList{Exprs: []ast.Expr{first}}
	for p.at(token.Comma) {
		p.advance()
		x := p.parseAssignment()
		if x == nil {
			return nil
		}
		list.Exprs = append(list.Exprs, x)
	}
	list.Pos = ast.At(p.spanFrom(start))
	return list
}

func (p *Parser) parseAssignment() ast.Expr {
	if !p.enter() {
		p.leave()
		return nil
	}
	defer p.leave()

	start := p.peek().Span
	lhs := p.parseConditional()
	if lhs == nil {
		return nil
	}
	op, ok := assignOp(p.peek().Kind)
	if !ok {
		return lhs
	}
	p.advance()
	rhs := p.parseAssignment()
	if rhs == nil {
		return nil
	}
	return &ast.Assignment{Pos: ast.At(p.spanFrom(start)), Op: op, L: lhs, R: rhs}
}

// parseBinary — разбор по таблице приоритетов, все операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	start := p.peek().Span
	lhs := p.parseCast()
	if lhs == nil {
		return nil
	}
	for {
		op, prec := binaryOp(p.peek().Kind)
		if prec == 0 || prec < minPrec {
			return lhs
		}
		p.advance()
		rhs := p.parseBinary(prec + 1)
		if rhs == nil {
			return nil
		}
		lhs = &ast.BinaryOp{Pos: ast.At(p.spanFrom(start)), Op: op, X: lhs, Y: rhs}
	}
}

func (p *Parser) parseCast() ast.Expr {
	if !p.enter() {
		p.leave()
		return nil
	}
	defer p.leave()

	if !p.at(token.LParen) || !p.startsTypeName(1) {
		return p.parseUnary()
	}
	lp := p.advance()
	to, ok := p.parseTypeName()
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after cast type"); !ok {
		return nil
	}
	if p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "compound literals are not supported")
		return nil
	}
	x := p.parseCast()
	if x == nil {
		return nil
	}
	return &ast.Cast{Pos: ast.At(p.spanFrom(lp.Span)), To: to, X: x}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.PlusPlus, token.MinusMinus:
		p.advance()
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryOp{Pos: ast.At(p.spanFrom(tok.Span)), Op: tok.Text, X: x}
	case token.KwSizeof:
		p.advance()
		if p.at(token.LParen) && p.startsTypeName(1) {
			p.advance()
			tn, ok := p.parseTypeName()
			if !ok {
				return nil
			}
			if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after sizeof type"); !ok {
				return nil
			}
			return &ast.UnaryOp{Pos: ast.At(p.spanFrom(tok.Span)), Op: "sizeof", X: tn}
		}
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryOp{Pos: ast.At(p.spanFrom(tok.Span)), Op: "sizeof", X: x}
	}

	if op, ok := prefixOp(tok.Kind); ok {
		p.advance()
		x := p.parseCast()
		if x == nil {
			return nil
		}
		return &ast.UnaryOp{Pos: ast.At(p.spanFrom(tok.Span)), Op: op, X: x}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.ID{Pos: ast.At(tok.Span), Name: tok.Text}
	case token.IntLit:
		p.advance()
		return &ast.Constant{Pos: ast.At(tok.Span), Type: ast.ConstInt, Value: tok.Text}
	case token.FloatLit:
		p.advance()
		return &ast.Constant{Pos: ast.At(tok.Span), Type: ast.ConstFloat, Value: tok.Text}
	case token.CharLit:
		p.advance()
		return &ast.Constant{Pos: ast.At(tok.Span), Type: ast.ConstChar, Value: tok.Text}
	case token.StringLit:
		// соседние строковые литералы склеиваются в одну константу
		parts := []string{p.advance().Text}
		for p.at(token.StringLit) {
			parts = append(parts, p.advance().Text)
		}
		return &ast.Constant{Pos: ast.At(p.spanFrom(tok.Span)), Type: ast.ConstString, Value: strings.Join(parts, " ")}
	case token.LParen:
		p.advance()
		x := p.parseExpr()
		if x == nil {
			return nil
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return nil
		}
		return x
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return nil
}
