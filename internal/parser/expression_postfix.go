package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

func (p *Parser) parsePostfix() ast.Expr {
	start := p.peek().Span
	x := p.parsePrimary()
	if x == nil {
		return nil
	}
	for {
		switch p.peek().Kind {
		case token.LBracket:
			p.advance()
			idx := p.parseExpr()
			if idx == nil {
				return nil
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index"); !ok {
				return nil
			}
			x = &ast.ArrayRef{Pos: ast.At(p.spanFrom(start)), X: x, Index: idx}
		case token.LParen:
			args, ok := p.parseArgs()
			if !ok {
				return nil
			}
			x = &ast.FuncCall{Pos: ast.At(p.spanFrom(start)), Fn: x, Args: args}
		case token.Dot, token.Arrow:
			arrow := p.advance().Kind == token.Arrow
			field, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
			if !ok {
				return nil
			}
			x = &ast.StructRef{Pos: ast.At(p.spanFrom(start)), X: x, Arrow: arrow, Field: field.Text}
		case token.PlusPlus:
			p.advance()
			x = &ast.UnaryOp{Pos: ast.At(p.spanFrom(start)), Op: "p++", X: x}
		case token.MinusMinus:
			p.advance()
			x = &ast.UnaryOp{Pos: ast.At(p.spanFrom(start)), Op: "p--", X: x}
		default:
			return x
		}
	}
}

// parseArgs parses a call argument list; "()" yields nil.
func (p *Parser) parseArgs() (*ast.ExprList, bool) {
	lp := p.advance()
	if p.at(token.RParen) {
		p.advance()
		return nil, true
	}
	args := &ast.ExprList{}
	for {
		a := p.parseAssignment()
		if a == nil {
			return nil, false
		}
		args.Exprs = append(args.Exprs, a)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments"); !ok {
		return nil, false
	}
	args.Pos = ast.At(p.spanFrom(lp.Span))
	return args, true
}
