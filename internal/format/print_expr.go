package format

import (
	"strings"

	"cstyle/internal/ast"
)

// expr renders e, parenthesized when it binds looser than minPrec.
func (p *printer) expr(e ast.Expr, minPrec int) string {
	p.enter()
	defer p.leave()

	s := p.exprText(e)
	if ast.Prec(e) < minPrec {
		return "(" + s + ")"
	}
	return s
}

func (p *printer) exprText(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.ID:
		return v.Name
	case *ast.Constant:
		return v.Value
	case *ast.BinaryOp:
		prec := ast.BinaryPrec(v.Op)
		// левоассоциативно: справа равный приоритет требует скобок
		return p.infix(p.expr(v.X, prec), v.Op, p.expr(v.Y, prec+1))
	case *ast.Assignment:
		return p.infix(p.expr(v.L, ast.PrecUnary), v.Op, p.expr(v.R, ast.PrecAssign))
	case *ast.TernaryOp:
		return p.expr(v.Cond, ast.PrecLogicalOr) + " ? " + p.expr(v.Then, 0) + " : " + p.expr(v.Else, ast.PrecTernary)
	case *ast.UnaryOp:
		return p.unary(v)
	case *ast.FuncCall:
		args := ""
		if v.Args != nil {
			args = p.exprList(v.Args.Exprs)
		}
		return p.expr(v.Fn, ast.PrecPostfix) + "(" + args + ")"
	case *ast.ExprList:
		return p.exprList(v.Exprs)
	case *ast.ArrayRef:
		return p.expr(v.X, ast.PrecPostfix) + "[" + p.expr(v.Index, 0) + "]"
	case *ast.StructRef:
		sep := "."
		if v.Arrow {
			sep = "->"
		}
		return p.expr(v.X, ast.PrecPostfix) + sep + v.Field
	case *ast.Cast:
		if v.To == nil {
			p.unsupported(v)
		}
		return "(" + p.typeString(v.To.Type, 0) + ")" + p.expr(v.X, ast.PrecUnary)
	case *ast.InitList:
		return "{" + p.exprList(v.Exprs) + "}"
	case *ast.Typename:
		return p.typeString(v.Type, 0)
	}
	p.unsupported(e)
	return ""
}

// exprList joins items with ", "; each item is a full assignment expression.
func (p *printer) exprList(xs []ast.Expr) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = p.expr(x, ast.PrecAssign)
	}
	return strings.Join(parts, ", ")
}

func (p *printer) unary(v *ast.UnaryOp) string {
	switch v.Op {
	case "sizeof":
		return "sizeof(" + p.expr(v.X, 0) + ")"
	case "p++", "p--":
		return p.expr(v.X, ast.PrecPostfix) + v.Op[1:]
	}
	x := p.expr(v.X, ast.PrecUnary)
	if glues(v.Op, x) {
		// "- -x" не должно стать "--x"
		x = "(" + x + ")"
	}
	return v.Op + x
}

// infix joins operands around op. An operator the policy leaves unspaced
// still gets spaces when gluing would change the tokens ("a - -b", "a / *p").
func (p *printer) infix(l, op, r string) string {
	if p.pol.SpaceAround(op) || glues(l, op) || glues(op, r) {
		return l + " " + op + " " + r
	}
	return l + op + r
}

// spaced returns op with the spacing the policy gives its operator class.
func (p *printer) spaced(op string) string {
	if p.pol.SpaceAround(op) {
		return " " + op + " "
	}
	return op
}

// glued lists character pairs that lex as one token or open a comment.
var glued = map[string]bool{
	"++": true, "--": true, "->": true, "&&": true, "||": true,
	"<<": true, ">>": true, "<=": true, ">=": true, "==": true, "!=": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true,
	"//": true, "/*": true,
}

// glues reports whether writing a directly before b would merge their edge
// characters into a different token.
func glues(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return glued[a[len(a)-1:]+b[:1]]
}
