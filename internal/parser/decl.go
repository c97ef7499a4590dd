package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

type declFlags struct {
	init      bool // "= initializer"
	bitfields bool // ": width"
	register  bool // объявлять имена в текущей области
}

// parseExternalDecl parses a function definition or a file-scope declaration.
func (p *Parser) parseExternalDecl() []ast.Node {
	start := p.peek().Span
	specs, ok := p.parseDeclSpecs(true)
	if !ok {
		return nil
	}
	if p.at(token.Semicolon) {
		p.advance()
		return []ast.Node{p.bareDecl(&specs, start)}
	}

	d, ok := p.parseDeclarator(declNamed)
	if !ok {
		return nil
	}
	if d.isFunc() && p.at(token.LBrace) && !specs.isTypedef() {
		p.declareName(d.name, false)
		decl := &ast.Decl{
			Pos:       ast.At(p.spanFrom(start)),
			Name:      d.name,
			Storage:   specs.storage,
			FuncSpecs: specs.funcSpecs,
			Type:      d.build(&specs),
		}
		body := p.parseBlock(d.params())
		if body == nil {
			return nil
		}
		return []ast.Node{&ast.FuncDef{Pos: ast.At(p.spanFrom(start)), Decl: decl, Body: body}}
	}

	decls, ok := p.parseInitDeclarators(&specs, start, &d, declFlags{init: true, register: true})
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); !ok {
		return nil
	}
	return stmtsToNodes(p.groupDecls(decls, &specs, start))
}

// parseDeclarationStmt parses a declaration inside a block.
func (p *Parser) parseDeclarationStmt() ([]ast.Stmt, bool) {
	start := p.peek().Span
	specs, ok := p.parseDeclSpecs(true)
	if !ok {
		return nil, false
	}
	if p.at(token.Semicolon) {
		p.advance()
		return []ast.Stmt{p.bareDecl(&specs, start)}, true
	}
	decls, ok := p.parseInitDeclarators(&specs, start, nil, declFlags{init: true, register: true})
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); !ok {
		return nil, false
	}
	return p.groupDecls(decls, &specs, start), true
}

// parseForDecl parses the declaration clause of a for header, including ';'.
func (p *Parser) parseForDecl() *ast.DeclList {
	start := p.peek().Span
	specs, ok := p.parseDeclSpecs(true)
	if !ok {
		return nil
	}
	decls, ok := p.parseInitDeclarators(&specs, start, nil, declFlags{init: true, register: true})
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for initializer"); !ok {
		return nil
	}
	return &ast.DeclList{Pos: ast.At(p.spanFrom(start)), Decls: decls}
}

// parseInitDeclarators parses a comma-separated declarator list. first, when
// non-nil, is an already parsed leading declarator.
func (p *Parser) parseInitDeclarators(specs *declSpecs, start source.Span, first *declarator, flags declFlags) ([]ast.Stmt, bool) {
	var out []ast.Stmt
	for {
		var d declarator
		switch {
		case first != nil:
			d, first = *first, nil
		case flags.bitfields && p.at(token.Colon):
			// безымянное битовое поле
		default:
			var ok bool
			if d, ok = p.parseDeclarator(declNamed); !ok {
				return nil, false
			}
		}
		typ := d.build(specs)

		if specs.isTypedef() {
			p.declareName(d.name, true)
			out = append(out, &ast.Typedef{Pos: ast.At(p.spanFrom(start)), Name: d.name, Type: typ})
		} else {
			decl := &ast.Decl{
				Name:      d.name,
				Storage:   specs.storage,
				FuncSpecs: specs.funcSpecs,
				Type:      typ,
			}
			if flags.bitfields && p.at(token.Colon) {
				p.advance()
				if decl.BitSize = p.parseConditional(); decl.BitSize == nil {
					return nil, false
				}
			}
			if flags.init && p.at(token.Assign) {
				p.advance()
				if decl.Init = p.parseInitializer(); decl.Init == nil {
					return nil, false
				}
			}
			if flags.register {
				p.declareName(d.name, false)
			}
			decl.Pos = ast.At(p.spanFrom(start))
			out = append(out, decl)
		}

		if !p.at(token.Comma) {
			return out, true
		}
		p.advance()
	}
}

// groupDecls keeps declarators together only when they share a struct,
// union or enum body; otherwise each one stands alone.
func (p *Parser) groupDecls(decls []ast.Stmt, specs *declSpecs, start source.Span) []ast.Stmt {
	if len(decls) > 1 && specs.hasBody() {
		return []ast.Stmt{&ast.DeclList{Pos: ast.At(p.spanFrom(start)), Decls: decls}}
	}
	return decls
}

// bareDecl — объявление без декларатора, например "struct S { ... };".
func (p *Parser) bareDecl(specs *declSpecs, start source.Span) *ast.Decl {
	var d declarator
	return &ast.Decl{
		Pos:       ast.At(p.spanFrom(start)),
		Storage:   specs.storage,
		FuncSpecs: specs.funcSpecs,
		Type:      d.build(specs),
	}
}

func (p *Parser) parseInitializer() ast.Expr {
	if !p.at(token.LBrace) {
		return p.parseAssignment()
	}
	lb := p.advance()
	list := &ast.InitList{Exprs: []ast.Expr{}}
	for !p.at(token.RBrace) {
		e := p.parseInitializer()
		if e == nil {
			return nil
		}
		list.Exprs = append(list.Exprs, e)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close initializer"); !ok {
		return nil
	}
	list.Pos = ast.At(p.spanFrom(lb.Span))
	return list
}

func stmtsToNodes(items []ast.Stmt) []ast.Node {
	out := make([]ast.Node, 0, len(items))
	for _, s := range items {
		out = append(out, s)
	}
	return out
}
