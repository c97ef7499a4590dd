package format

import (
	"cstyle/internal/ast"
)

// stmt prints s starting on a new line at indent.
func (p *printer) stmt(s ast.Stmt, indent int) {
	p.enter()
	defer p.leave()

	p.anchor(p.lineOf(s), indent)
	p.stmtBody(s, indent)
	p.lastEnd = p.endLineOf(s)
}

// inline prints s and pulls its first line onto the current last line.
func (p *printer) inline(s ast.Stmt, indent int, sep string) {
	p.enter()
	defer p.leave()

	p.anchorInline(p.lineOf(s))
	n := p.w.Len()
	p.stmtBody(s, indent)
	p.w.JoinFrom(n, sep)
	p.lastEnd = p.endLineOf(s)
}

func (p *printer) stmts(items []ast.Stmt, indent int) {
	for _, s := range items {
		p.stmt(s, indent)
	}
}

func (p *printer) stmtBody(s ast.Stmt, indent int) {
	ind := p.indent(indent)
	switch v := s.(type) {
	case *ast.Compound:
		p.w.Line(ind, "{")
		p.blockBody(v, indent)
	case *ast.ExprStmt:
		p.w.Line(ind, p.expr(v.X, 0)+";")
	case *ast.Decl:
		p.w.Line(ind, p.declString(v, indent)+";")
	case *ast.Typedef:
		p.w.Line(ind, p.typedefString(v, indent)+";")
	case *ast.DeclList:
		p.declList(v, indent)
	case *ast.If:
		p.w.Line(ind, "if ("+p.expr(v.Cond, 0)+")")
		p.ifTail(v, indent)
	case *ast.While:
		p.w.Line(ind, "while ("+p.expr(v.Cond, 0)+")")
		p.body(v.Body, indent)
	case *ast.DoWhile:
		p.doWhile(v, indent)
	case *ast.For:
		p.w.Line(ind, p.forHeader(v, indent))
		p.body(v.Body, indent)
	case *ast.Switch:
		p.w.Line(ind, "switch ("+p.expr(v.Cond, 0)+")")
		p.body(v.Body, indent)
	case *ast.Case:
		p.w.Line(ind, "case "+p.expr(v.Expr, ast.PrecTernary)+":")
		p.stmts(v.Stmts, indent+1)
	case *ast.Default:
		p.w.Line(ind, "default:")
		p.stmts(v.Stmts, indent+1)
	case *ast.Return:
		if v.Expr == nil {
			p.w.Line(ind, "return;")
		} else {
			p.w.Line(ind, "return "+p.expr(v.Expr, 0)+";")
		}
	case *ast.Break:
		p.w.Line(ind, "break;")
	case *ast.Continue:
		p.w.Line(ind, "continue;")
	case *ast.Goto:
		p.w.Line(ind, "goto "+v.Label+";")
	case *ast.Label:
		p.w.Line(ind, v.Name+":")
		if v.Stmt != nil {
			p.stmt(v.Stmt, indent)
		}
	case *ast.EmptyStmt:
		p.w.Line(ind, ";")
	default:
		p.unsupported(s)
	}
}

// openBrace puts '{' after the header on the last line, or on its own line
// when the policy asks for it.
func (p *printer) openBrace(indent int) {
	if p.pol.BlockBraceNewLine {
		p.w.Line(p.indent(indent), "{")
		return
	}
	p.w.Append(" {")
}

// blockBody prints the items of c one level deeper and the closing brace at
// indent. The opening brace is already written.
func (p *printer) blockBody(c *ast.Compound, indent int) {
	p.stmts(c.Items, indent+1)
	p.anchor(p.endLineOf(c), indent+1)
	p.w.Line(p.indent(indent), "}")
	p.lastEnd = p.endLineOf(c)
}

// body prints the body of a loop or switch whose header is the last line:
// a block keeps its brace on the header line, a single statement goes one
// level deeper.
func (p *printer) body(s ast.Stmt, indent int) {
	c, ok := s.(*ast.Compound)
	if !ok {
		p.stmt(s, indent+1)
		return
	}
	p.enter()
	defer p.leave()
	p.anchorInline(p.lineOf(c))
	p.openBrace(indent)
	p.blockBody(c, indent)
}

// ifTail prints the branches of v after its "if (cond)" header.
func (p *printer) ifTail(v *ast.If, indent int) {
	_, thenBlock := v.Then.(*ast.Compound)
	switch {
	case thenBlock:
		p.body(v.Then, indent)
	case v.Else != nil && dangles(v.Then):
		// без скобок else досталось бы вложенному if
		p.openBrace(indent)
		p.stmt(v.Then, indent+1)
		p.w.Line(p.indent(indent), "}")
		thenBlock = true
	case ownsElse(v.Then):
		// вложенный if со своим else уходит на отдельную строку,
		// чтобы else стоял под своим if
		p.stmt(v.Then, indent+1)
	default:
		p.inline(v.Then, indent, " ")
	}
	if v.Else == nil {
		return
	}

	if thenBlock && !p.pol.BlockBraceNewLine {
		p.w.Append(" else")
	} else {
		p.w.Line(p.indent(indent), "else")
	}
	switch e := v.Else.(type) {
	case *ast.If:
		p.enter()
		defer p.leave()
		p.anchorInline(p.lineOf(e))
		p.w.Append(" if (" + p.expr(e.Cond, 0) + ")")
		p.ifTail(e, indent)
		p.lastEnd = p.endLineOf(e)
	case *ast.Compound:
		p.body(e, indent)
	default:
		p.inline(e, indent, " ")
	}
}

// dangles reports whether s ends in an if without else that would capture
// a following else.
func dangles(s ast.Stmt) bool {
	for {
		switch v := s.(type) {
		case *ast.If:
			if v.Else == nil {
				return true
			}
			s = v.Else
		case *ast.While:
			s = v.Body
		case *ast.For:
			s = v.Body
		case *ast.Switch:
			s = v.Body
		case *ast.Label:
			s = v.Stmt
		default:
			return false
		}
	}
}

// ownsElse reports whether s is a chain of if statements whose innermost
// if has an else of its own.
func ownsElse(s ast.Stmt) bool {
	for {
		v, ok := s.(*ast.If)
		if !ok {
			return false
		}
		if v.Else != nil {
			return true
		}
		s = v.Then
	}
}

func (p *printer) doWhile(v *ast.DoWhile, indent int) {
	ind := p.indent(indent)
	cond := "while (" + p.expr(v.Cond, 0) + ");"
	if p.pol.PadDoWhileCond {
		cond = "while ( " + p.expr(v.Cond, 0) + " );"
	}
	p.w.Line(ind, "do")
	if c, ok := v.Body.(*ast.Compound); ok {
		p.anchorInline(p.lineOf(c))
		p.openBrace(indent)
		p.blockBody(c, indent)
		p.w.Append(" " + cond)
		return
	}
	p.stmt(v.Body, indent+1)
	p.w.Line(ind, cond)
}

func (p *printer) forHeader(v *ast.For, indent int) string {
	var init string
	switch x := v.Init.(type) {
	case nil:
	case *ast.DeclList:
		init = p.declListInline(x, indent)
	case ast.Expr:
		init = p.expr(x, 0)
	default:
		p.unsupported(x)
	}
	h := "for (" + init + ";"
	if v.Cond != nil {
		h += " " + p.expr(v.Cond, 0)
	}
	h += ";"
	if v.Next != nil {
		h += " " + p.expr(v.Next, 0)
	}
	return h + ")"
}
