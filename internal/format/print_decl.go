package format

import (
	"strings"

	"cstyle/internal/ast"
)

// declString renders d without the trailing ';':
// function specifiers, storage class, type with declarator, bit width, initializer.
func (p *printer) declString(d *ast.Decl, indent int) string {
	var b strings.Builder
	for _, s := range d.FuncSpecs {
		b.WriteString(s + " ")
	}
	for _, s := range d.Storage {
		b.WriteString(s + " ")
	}
	b.WriteString(p.typeString(d.Type, indent))
	b.WriteString(p.declSuffix(d))
	return b.String()
}

func (p *printer) declSuffix(d *ast.Decl) string {
	var s string
	if d.BitSize != nil {
		s += " : " + p.expr(d.BitSize, ast.PrecTernary)
	}
	if d.Init != nil {
		s += p.spaced("=") + p.expr(d.Init, ast.PrecAssign)
	}
	return s
}

func (p *printer) typedefString(t *ast.Typedef, indent int) string {
	return "typedef " + p.typeString(t.Type, indent)
}

// declList prints declarators sharing one struct, union or enum body as a
// single declaration; any other list is split one declaration per line.
func (p *printer) declList(v *ast.DeclList, indent int) {
	ind := p.indent(indent)
	if sharesBody(v) {
		p.w.Line(ind, p.declListInline(v, indent)+";")
		return
	}
	for i, d := range v.Decls {
		if i > 0 {
			p.anchor(p.lineOf(d), indent)
		}
		p.w.Line(ind, p.declItem(d, indent)+";")
	}
}

// declListInline renders the first declaration in full and only the
// declarators of the rest: "int i = 0, *p".
func (p *printer) declListInline(v *ast.DeclList, indent int) string {
	if len(v.Decls) == 0 {
		p.unsupported(v)
	}
	parts := make([]string, 0, len(v.Decls))
	parts = append(parts, p.declItem(v.Decls[0], indent))
	for _, d := range v.Decls[1:] {
		switch x := d.(type) {
		case *ast.Decl:
			parts = append(parts, p.declarator(x.Type, indent, false)+p.declSuffix(x))
		case *ast.Typedef:
			parts = append(parts, p.declarator(x.Type, indent, false))
		default:
			p.unsupported(d)
		}
	}
	return strings.Join(parts, ", ")
}

func (p *printer) declItem(s ast.Stmt, indent int) string {
	switch v := s.(type) {
	case *ast.Decl:
		return p.declString(v, indent)
	case *ast.Typedef:
		return p.typedefString(v, indent)
	}
	p.unsupported(s)
	return ""
}

func sharesBody(v *ast.DeclList) bool {
	if len(v.Decls) == 0 {
		return false
	}
	var t ast.Type
	switch d := v.Decls[0].(type) {
	case *ast.Decl:
		t = d.Type
	case *ast.Typedef:
		t = d.Type
	}
	switch spec := baseSpec(t).(type) {
	case *ast.Struct:
		return spec.HasBody
	case *ast.Enum:
		return spec.HasBody
	}
	return false
}

// baseSpec walks the declarator layers down to the type specifier.
func baseSpec(t ast.Type) ast.TypeSpec {
	for {
		switch v := t.(type) {
		case *ast.PtrDecl:
			t = v.Type
		case *ast.ArrayDecl:
			t = v.Type
		case *ast.FuncDecl:
			t = v.Type
		case *ast.TypeDecl:
			return v.Type
		default:
			return nil
		}
	}
}

func (p *printer) typeString(t ast.Type, indent int) string {
	return p.declarator(t, indent, true)
}

// declarator renders the C declarator of t: modifiers collected from the
// outside in are applied around the name, with parentheses where a pointer
// is followed by an array or function suffix ("(*fp)(int)", "(*a)[3]").
// withBase adds qualifiers and the type specifier in front.
func (p *printer) declarator(t ast.Type, indent int, withBase bool) string {
	var mods []ast.Type
	for {
		switch v := t.(type) {
		case *ast.PtrDecl:
			mods = append(mods, v)
			t = v.Type
		case *ast.ArrayDecl:
			mods = append(mods, v)
			t = v.Type
		case *ast.FuncDecl:
			mods = append(mods, v)
			t = v.Type
		case *ast.TypeDecl:
			return p.typeDecl(v, mods, indent, withBase)
		default:
			p.unsupported(t)
		}
	}
}

func (p *printer) typeDecl(v *ast.TypeDecl, mods []ast.Type, indent int, withBase bool) string {
	name := v.DeclName
	for i, m := range mods {
		afterPtr := i > 0 && isPtr(mods[i-1])
		switch mv := m.(type) {
		case *ast.ArrayDecl:
			if afterPtr {
				name = "(" + name + ")"
			}
			dim := ""
			if mv.Dim != nil {
				dim = p.expr(mv.Dim, ast.PrecAssign)
			}
			name += "[" + dim + "]"
		case *ast.FuncDecl:
			if afterPtr {
				name = "(" + name + ")"
			}
			name += "(" + p.params(mv.Params) + ")"
		case *ast.PtrDecl:
			q := strings.Join(mv.Quals, " ")
			switch {
			case q == "":
				name = "*" + name
			case name == "":
				name = "*" + q
			default:
				name = "*" + q + " " + name
			}
		}
	}
	if !withBase {
		return name
	}

	parts := make([]string, 0, 3)
	if len(v.Quals) > 0 {
		parts = append(parts, strings.Join(v.Quals, " "))
	}
	if v.Type != nil {
		parts = append(parts, p.typeSpec(v.Type, indent))
	}
	if name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

func isPtr(t ast.Type) bool {
	_, ok := t.(*ast.PtrDecl)
	return ok
}

func (p *printer) typeSpec(ts ast.TypeSpec, indent int) string {
	switch v := ts.(type) {
	case *ast.IdentifierType:
		return strings.Join(v.Names, " ")
	case *ast.Struct:
		return p.structSpec(v, indent)
	case *ast.Enum:
		return p.enumSpec(v, indent)
	}
	p.unsupported(ts)
	return ""
}

// structSpec renders a struct or union; a body puts one member per line one
// level deeper than the keyword line.
func (p *printer) structSpec(v *ast.Struct, indent int) string {
	s := "struct"
	if v.Union {
		s = "union"
	}
	if v.Name != "" {
		s += " " + v.Name
	}
	if !v.HasBody {
		return s
	}

	p.enter()
	defer p.leave()
	inner := p.indent(indent + 1)
	var b strings.Builder
	b.WriteString(s + " {")
	for _, m := range v.Members {
		b.WriteString(p.anchorText(p.lineOf(m), indent+1))
		for _, text := range p.memberLines(m, indent+1) {
			b.WriteString("\n" + inner + text)
		}
	}
	b.WriteString(p.anchorText(p.endLineOf(v), indent+1))
	b.WriteString("\n" + p.indent(indent) + "}")
	return b.String()
}

func (p *printer) memberLines(m ast.Node, indent int) []string {
	line := p.lineOf(m)
	switch v := m.(type) {
	case *ast.Decl:
		return []string{withTrail(p.declString(v, indent)+";", p.trailText(line))}
	case *ast.DeclList:
		if sharesBody(v) {
			return []string{withTrail(p.declListInline(v, indent)+";", p.trailText(line))}
		}
		out := make([]string, 0, len(v.Decls))
		for _, d := range v.Decls {
			out = append(out, withTrail(p.declItem(d, indent)+";", p.trailText(p.lineOf(d))))
		}
		return out
	}
	p.unsupported(m)
	return nil
}

// withTrail inserts a trailing comment after the first line of text.
func withTrail(text, trail string) string {
	if trail == "" {
		return text
	}
	first, rest, multi := strings.Cut(text, "\n")
	if !multi {
		return text + trail
	}
	return first + trail + "\n" + rest
}

// enumSpec renders an enum; values are comma-joined one per line.
func (p *printer) enumSpec(v *ast.Enum, indent int) string {
	s := "enum"
	if v.Name != "" {
		s += " " + v.Name
	}
	if !v.HasBody {
		return s
	}

	inner := p.indent(indent + 1)
	var b strings.Builder
	b.WriteString(s + " {")
	for i, e := range v.Values {
		line := p.lineOf(e)
		b.WriteString(p.anchorText(line, indent+1))
		text := p.enumerator(e)
		if i < len(v.Values)-1 {
			text += ","
		}
		b.WriteString("\n" + inner + text + p.trailText(line))
	}
	b.WriteString(p.anchorText(p.endLineOf(v), indent+1))
	b.WriteString("\n" + p.indent(indent) + "}")
	return b.String()
}

func (p *printer) enumerator(e *ast.Enumerator) string {
	if e.Value == nil {
		return e.Name
	}
	return e.Name + p.spaced("=") + p.expr(e.Value, ast.PrecTernary)
}

func (p *printer) params(pl *ast.ParamList) string {
	if pl == nil {
		return ""
	}
	parts := make([]string, 0, len(pl.Params))
	for _, prm := range pl.Params {
		switch v := prm.(type) {
		case *ast.Decl:
			parts = append(parts, p.declString(v, 0))
		case *ast.Typename:
			parts = append(parts, p.typeString(v.Type, 0))
		case *ast.EllipsisParam:
			parts = append(parts, "...")
		default:
			p.unsupported(prm)
		}
	}
	return strings.Join(parts, ", ")
}
