package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

// parseConditional parses "a ? b : c" (правоассоциативно) and everything tighter.
func (p *Parser) parseConditional() ast.Expr {
	start := p.peek().Span
	cond := p.parseBinary(ast.PrecLogicalOr)
	if cond == nil || !p.at(token.Question) {
		return cond
	}
	p.advance()
	then := p.parseExpr()
	if then == nil {
		return nil
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return nil
	}
	els := p.parseConditional()
	if els == nil {
		return nil
	}
	return &ast.TernaryOp{Pos: ast.At(p.spanFrom(start)), Cond: cond, Then: then, Else: els}
}
