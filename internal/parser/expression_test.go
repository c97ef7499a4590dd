package parser

import (
	"strings"
	"testing"

	"cstyle/internal/ast"
)

// sexpr renders an expression as a fully parenthesized prefix form.
func sexpr(e ast.Node) string {
	switch v := e.(type) {
	case *ast.ID:
		return v.Name
	case *ast.Constant:
		return v.Value
	case *ast.BinaryOp:
		return "(" + v.Op + " " + sexpr(v.X) + " " + sexpr(v.Y) + ")"
	case *ast.Assignment:
		return "(" + v.Op + " " + sexpr(v.L) + " " + sexpr(v.R) + ")"
	case *ast.UnaryOp:
		return "(" + v.Op + " " + sexpr(v.X) + ")"
	case *ast.TernaryOp:
		return "(? " + sexpr(v.Cond) + " " + sexpr(v.Then) + " " + sexpr(v.Else) + ")"
	case *ast.FuncCall:
		parts := []string{"call", sexpr(v.Fn)}
		if v.Args != nil {
			for _, a := range v.Args.Exprs {
				parts = append(parts, sexpr(a))
			}
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.ArrayRef:
		return "([] " + sexpr(v.X) + " " + sexpr(v.Index) + ")"
	case *ast.StructRef:
		op := "."
		if v.Arrow {
			op = "->"
		}
		return "(" + op + " " + sexpr(v.X) + " " + v.Field + ")"
	case *ast.Cast:
		return "(cast " + sexpr(v.X) + ")"
	case *ast.Typename:
		return "type"
	case *ast.ExprList:
		parts := make([]string, 0, len(v.Exprs))
		for _, x := range v.Exprs {
			parts = append(parts, sexpr(x))
		}
		return "(, " + strings.Join(parts, " ") + ")"
	}
	return "?" + ast.Describe(e)
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"(a + b) * c", "(* (+ a b) c)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a = b = c", "(= a (= b c))"},
		{"x += y << 2", "(+= x (<< y 2))"},
		{"a || b && c | d ^ e & f", "(|| a (&& b (| c (^ d (& e f)))))"},
		{"a == b < c", "(== a (< b c))"},
		{"c ? x : y ? 1 : 2", "(? c x (? y 1 2))"},
		{"-x * !y", "(* (- x) (! y))"},
		{"*p++", "(* (p++ p))"},
		{"++*p", "(++ (* p))"},
		{"sizeof x + 1", "(+ (sizeof x) 1)"},
		{"sizeof(int) * n", "(* (sizeof type) n)"},
		{"(char)c + 1", "(+ (cast c) 1)"},
		{"p->next->val[i].x", "(. ([] (-> (-> p next) val) i) x)"},
		{"f(a, (b, c))", "(call f a (, b c))"},
		{"g()", "(call g)"},
		{"a, b", "(, a b)"},
		{"&arr[0]", "(& ([] arr 0))"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			src := "void f(void) { " + tt.expr + "; }"
			stmt, ok := firstBodyItem(t, src).(*ast.ExprStmt)
			if !ok {
				t.Fatalf("expected expression statement")
			}
			if got := sexpr(stmt.X); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAdjacentStringsJoin(t *testing.T) {
	stmt := firstBodyItem(t, `void f(void) { puts("a" "b"); }`).(*ast.ExprStmt)
	arg := stmt.X.(*ast.FuncCall).Args.Exprs[0].(*ast.Constant)
	if arg.Value != `"a" "b"` || arg.Type != ast.ConstString {
		t.Fatalf("unexpected constant %+v", arg)
	}
}

func TestCastNeedsTypeName(t *testing.T) {
	// (x) без typedef — это скобки, а не приведение
	stmt := firstBodyItem(t, "void f(int x) { (x) - 1; }").(*ast.ExprStmt)
	if bin, ok := stmt.X.(*ast.BinaryOp); !ok || bin.Op != "-" {
		t.Fatalf("got %s", ast.DumpString(stmt.X))
	}

	stmt = firstBodyItem(t, "typedef int T;\nvoid f(int x) { (T) - 1; }").(*ast.ExprStmt)
	if _, ok := stmt.X.(*ast.Cast); !ok {
		t.Fatalf("got %s", ast.DumpString(stmt.X))
	}
}
