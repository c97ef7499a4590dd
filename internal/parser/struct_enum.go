package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

func (p *Parser) parseStructOrUnion() (*ast.Struct, bool) {
	kw := p.advance()
	st := &ast.Struct{Union: kw.Kind == token.KwUnion}
	if p.at(token.Ident) {
		st.Name = p.advance().Text
	}

	switch {
	case p.at(token.LBrace):
		p.advance()
		st.HasBody = true
		st.Members = []ast.Node{}
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			if p.at(token.Semicolon) {
				p.advance()
				continue
			}
			members, ok := p.parseMemberDecl()
			if !ok {
				return nil, false
			}
			st.Members = append(st.Members, members...)
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close "+kw.Text+" body"); !ok {
			return nil, false
		}
	case st.Name == "":
		p.err(diag.SynExpectIdentifier, "expected "+kw.Text+" name or body, got "+describe(p.peek()))
		return nil, false
	}
	st.Pos = ast.At(p.spanFrom(kw.Span))
	return st, true
}

// parseMemberDecl parses one struct member declaration up to and including ';'.
func (p *Parser) parseMemberDecl() ([]ast.Node, bool) {
	start := p.peek().Span
	specs, ok := p.parseDeclSpecs(false)
	if !ok {
		return nil, false
	}
	if p.at(token.Semicolon) {
		// анонимный вложенный struct/union
		p.advance()
		return []ast.Node{p.bareDecl(&specs, start)}, true
	}
	decls, ok := p.parseInitDeclarators(&specs, start, nil, declFlags{bitfields: true})
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after member declaration"); !ok {
		return nil, false
	}
	return stmtsToNodes(p.groupDecls(decls, &specs, start)), true
}

func (p *Parser) parseEnum() (*ast.Enum, bool) {
	kw := p.advance()
	en := &ast.Enum{}
	if p.at(token.Ident) {
		en.Name = p.advance().Text
	}

	switch {
	case p.at(token.LBrace):
		p.advance()
		en.HasBody = true
		en.Values = []*ast.Enumerator{}
		for !p.at(token.RBrace) {
			tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enumerator name")
			if !ok {
				return nil, false
			}
			e := &ast.Enumerator{Name: tok.Text}
			if p.at(token.Assign) {
				p.advance()
				if e.Value = p.parseConditional(); e.Value == nil {
					return nil, false
				}
			}
			e.Pos = ast.At(p.spanFrom(tok.Span))
			p.declareName(e.Name, false)
			en.Values = append(en.Values, e)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum body"); !ok {
			return nil, false
		}
	case en.Name == "":
		p.err(diag.SynExpectIdentifier, "expected enum name or body, got "+describe(p.peek()))
		return nil, false
	}
	en.Pos = ast.At(p.spanFrom(kw.Span))
	return en, true
}
