package parser

import (
	"slices"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

// declSpecs — разобранные спецификаторы объявления.
type declSpecs struct {
	span      source.Span
	storage   []string
	funcSpecs []string
	quals     []string
	spec      ast.TypeSpec
}

func (s *declSpecs) isTypedef() bool {
	return slices.Contains(s.storage, "typedef")
}

// hasBody reports whether the base type defines a struct, union or enum body.
func (s *declSpecs) hasBody() bool {
	switch v := s.spec.(type) {
	case *ast.Struct:
		return v.HasBody
	case *ast.Enum:
		return v.HasBody
	}
	return false
}

// startsDecl reports whether the current token begins a declaration.
func (p *Parser) startsDecl() bool {
	tok := p.peek()
	if tok.IsStorageClass() || tok.IsQualifier() || tok.IsTypeKeyword() || tok.Kind == token.KwInline {
		return true
	}
	// typedef-имя, за которым не следует ':' (иначе это метка)
	return tok.Kind == token.Ident && p.isTypedefName(tok.Text) && p.peekN(1).Kind != token.Colon
}

// startsTypeName reports whether the token at offset n begins a type name
// (casts, sizeof, abstract parameters).
func (p *Parser) startsTypeName(n int) bool {
	tok := p.peekN(n)
	if tok.IsQualifier() || tok.IsTypeKeyword() {
		return true
	}
	return tok.Kind == token.Ident && p.isTypedefName(tok.Text)
}

// parseDeclSpecs reads storage classes, qualifiers and exactly one base type.
// allowStorage is false inside type names and struct members.
func (p *Parser) parseDeclSpecs(allowStorage bool) (declSpecs, bool) {
	specs := declSpecs{span: p.peek().Span}
	var names []string
	var nameSpan source.Span

loop:
	for {
		tok := p.peek()
		switch {
		case tok.IsStorageClass():
			if !allowStorage {
				p.err(diag.SynUnexpectedToken, "storage class "+describe(tok)+" is not allowed here")
				return specs, false
			}
			specs.storage = append(specs.storage, p.advance().Text)
		case tok.Kind == token.KwInline:
			specs.funcSpecs = append(specs.funcSpecs, p.advance().Text)
		case tok.IsQualifier():
			specs.quals = append(specs.quals, p.advance().Text)
		case tok.Kind == token.KwStruct || tok.Kind == token.KwUnion:
			if specs.spec != nil || len(names) > 0 {
				break loop
			}
			st, ok := p.parseStructOrUnion()
			if !ok {
				return specs, false
			}
			specs.spec = st
		case tok.Kind == token.KwEnum:
			if specs.spec != nil || len(names) > 0 {
				break loop
			}
			en, ok := p.parseEnum()
			if !ok {
				return specs, false
			}
			specs.spec = en
		case tok.IsTypeKeyword():
			if specs.spec != nil {
				break loop
			}
			if len(names) == 0 {
				nameSpan = tok.Span
			}
			names = append(names, p.advance().Text)
			nameSpan = p.spanFrom(nameSpan)
		case tok.Kind == token.Ident && specs.spec == nil && len(names) == 0 && p.isTypedefName(tok.Text):
			nameSpan = tok.Span
			names = append(names, p.advance().Text)
			specs.spec = &ast.IdentifierType{Pos: ast.At(nameSpan), Names: names}
		default:
			break loop
		}
	}

	if specs.spec == nil {
		if len(names) == 0 {
			p.err(diag.SynExpectType, "expected type specifier, got "+describe(p.peek()))
			return specs, false
		}
		specs.spec = &ast.IdentifierType{Pos: ast.At(nameSpan), Names: names}
	}
	specs.span = p.spanFrom(specs.span)
	return specs, true
}

// parseTypeName parses "specifier-qualifier-list abstract-declarator?".
func (p *Parser) parseTypeName() (*ast.Typename, bool) {
	start := p.peek().Span
	specs, ok := p.parseDeclSpecs(false)
	if !ok {
		return nil, false
	}
	d, ok := p.parseDeclarator(declAbstract)
	if !ok {
		return nil, false
	}
	return &ast.Typename{Pos: ast.At(p.spanFrom(start)), Type: d.build(&specs)}, true
}
