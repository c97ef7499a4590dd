package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

// parseBlock parses "{ items }" in a fresh scope. Names from params, when
// given, are declared in that scope and shadow outer typedef names.
func (p *Parser) parseBlock(params *ast.ParamList) *ast.Compound {
	lb, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil
	}
	p.pushScope()
	defer p.popScope()
	if params != nil {
		for _, prm := range params.Params {
			if d, ok := prm.(*ast.Decl); ok {
				p.declareName(d.Name, false)
			}
		}
	}

	block := &ast.Compound{Items: []ast.Stmt{}}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		items, ok := p.parseBlockItem()
		if !ok {
			return nil
		}
		block.Items = append(block.Items, items...)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block"); !ok {
		return nil
	}
	block.Pos = ast.At(p.spanFrom(lb.Span))
	return block
}

func (p *Parser) parseBlockItem() ([]ast.Stmt, bool) {
	switch {
	case p.atOr(token.KwCase, token.KwDefault):
		s := p.parseCaseLabel(true)
		if s == nil {
			return nil, false
		}
		return []ast.Stmt{s}, true
	case p.startsDecl():
		return p.parseDeclarationStmt()
	}
	s := p.parseStatement()
	if s == nil {
		return nil, false
	}
	return []ast.Stmt{s}, true
}

// parseStatement parses one statement. It returns nil after reporting an error.
func (p *Parser) parseStatement() ast.Stmt {
	if !p.enter() {
		p.leave()
		return nil
	}
	defer p.leave()

	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		if block := p.parseBlock(nil); block != nil {
			return block
		}
		return nil
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwCase, token.KwDefault:
		return p.parseCaseLabel(false)
	case token.KwReturn:
		p.advance()
		ret := &ast.Return{}
		if !p.at(token.Semicolon) {
			if ret.Expr = p.parseExpr(); ret.Expr == nil {
				return nil
			}
		}
		if !p.endStmt("return") {
			return nil
		}
		ret.Pos = ast.At(p.spanFrom(tok.Span))
		return ret
	case token.KwBreak:
		p.advance()
		if !p.endStmt("break") {
			return nil
		}
		return &ast.Break{Pos: ast.At(p.spanFrom(tok.Span))}
	case token.KwContinue:
		p.advance()
		if !p.endStmt("continue") {
			return nil
		}
		return &ast.Continue{Pos: ast.At(p.spanFrom(tok.Span))}
	case token.KwGoto:
		p.advance()
		label, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected label after goto")
		if !ok || !p.endStmt("goto") {
			return nil
		}
		return &ast.Goto{Pos: ast.At(p.spanFrom(tok.Span)), Label: label.Text}
	case token.Semicolon:
		p.advance()
		return &ast.EmptyStmt{Pos: ast.At(tok.Span)}
	case token.Ident:
		if p.peekN(1).Kind == token.Colon {
			return p.parseLabel()
		}
	}

	x := p.parseExpr()
	if x == nil || !p.endStmt("expression") {
		return nil
	}
	return &ast.ExprStmt{Pos: ast.At(p.spanFrom(tok.Span)), X: x}
}

func (p *Parser) endStmt(what string) bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after "+what)
	return ok
}

func (p *Parser) parseLabel() ast.Stmt {
	name := p.advance()
	p.advance() // ':'
	lbl := &ast.Label{Name: name.Text}
	if p.at(token.RBrace) {
		// метка в конце блока: считаем, что за ней пустой оператор
		lbl.Stmt = &ast.EmptyStmt{Pos: ast.At(p.lastSpan)}
	} else if lbl.Stmt = p.parseStatement(); lbl.Stmt == nil {
		return nil
	}
	lbl.Pos = ast.At(p.spanFrom(name.Span))
	return lbl
}

// parseCaseLabel parses "case X:" or "default:". Inside a block the label
// owns every following item up to the next label or the closing brace.
func (p *Parser) parseCaseLabel(inBlock bool) ast.Stmt {
	kw := p.advance()
	var expr ast.Expr
	if kw.Kind == token.KwCase {
		if expr = p.parseConditional(); expr == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after "+kw.Text+" label"); !ok {
		return nil
	}

	stmts := []ast.Stmt{}
	if inBlock {
		for !p.atOr(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
			items, ok := p.parseBlockItem()
			if !ok {
				return nil
			}
			stmts = append(stmts, items...)
		}
	} else {
		s := p.parseStatement()
		if s == nil {
			return nil
		}
		stmts = append(stmts, s)
	}

	sp := ast.At(p.spanFrom(kw.Span))
	if kw.Kind == token.KwDefault {
		return &ast.Default{Pos: sp, Stmts: stmts}
	}
	return &ast.Case{Pos: sp, Expr: expr, Stmts: stmts}
}
