package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

// parseParenExpr parses "( expression )" after a control keyword.
func (p *Parser) parseParenExpr(kw string) ast.Expr {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after "+kw); !ok {
		return nil
	}
	x := p.parseExpr()
	if x == nil {
		return nil
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after "+kw+" condition"); !ok {
		return nil
	}
	return x
}

func (p *Parser) parseIf() ast.Stmt {
	kw := p.advance()
	s := &ast.If{}
	if s.Cond = p.parseParenExpr("if"); s.Cond == nil {
		return nil
	}
	if s.Then = p.parseStatement(); s.Then == nil {
		return nil
	}
	if p.at(token.KwElse) {
		p.advance()
		if s.Else = p.parseStatement(); s.Else == nil {
			return nil
		}
	}
	s.Pos = ast.At(p.spanFrom(kw.Span))
	return s
}

func (p *Parser) parseWhile() ast.Stmt {
	kw := p.advance()
	s := &ast.While{}
	if s.Cond = p.parseParenExpr("while"); s.Cond == nil {
		return nil
	}
	if s.Body = p.parseStatement(); s.Body == nil {
		return nil
	}
	s.Pos = ast.At(p.spanFrom(kw.Span))
	return s
}

func (p *Parser) parseDoWhile() ast.Stmt {
	kw := p.advance()
	s := &ast.DoWhile{}
	if s.Body = p.parseStatement(); s.Body == nil {
		return nil
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return nil
	}
	if s.Cond = p.parseParenExpr("while"); s.Cond == nil {
		return nil
	}
	if !p.endStmt("do-while") {
		return nil
	}
	s.Pos = ast.At(p.spanFrom(kw.Span))
	return s
}

func (p *Parser) parseFor() ast.Stmt {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after for"); !ok {
		return nil
	}
	p.pushScope()
	defer p.popScope()

	s := &ast.For{}
	switch {
	case p.startsDecl():
		dl := p.parseForDecl()
		if dl == nil {
			return nil
		}
		s.Init = dl
	case p.at(token.Semicolon):
		p.advance()
	default:
		x := p.parseExpr()
		if x == nil || !p.endStmt("for initializer") {
			return nil
		}
		s.Init = x
	}

	if !p.at(token.Semicolon) {
		if s.Cond = p.parseExpr(); s.Cond == nil {
			return nil
		}
	}
	if !p.endStmt("for condition") {
		return nil
	}
	if !p.at(token.RParen) {
		if s.Next = p.parseExpr(); s.Next == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for header"); !ok {
		return nil
	}
	if s.Body = p.parseStatement(); s.Body == nil {
		return nil
	}
	s.Pos = ast.At(p.spanFrom(kw.Span))
	return s
}

func (p *Parser) parseSwitch() ast.Stmt {
	kw := p.advance()
	s := &ast.Switch{}
	if s.Cond = p.parseParenExpr("switch"); s.Cond == nil {
		return nil
	}
	if s.Body = p.parseStatement(); s.Body == nil {
		return nil
	}
	s.Pos = ast.At(p.spanFrom(kw.Span))
	return s
}
