package parser

import (
	"strings"
	"testing"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
)

func TestSwitchCaseOwnsFollowingItems(t *testing.T) {
	src := `void f(int x) {
	switch (x) {
	case 1:
	case 2:
		g();
		break;
	default:
		h();
	}
}`
	sw := firstBodyItem(t, src).(*ast.Switch)
	body := sw.Body.(*ast.Compound)
	if len(body.Items) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(body.Items))
	}
	if c := body.Items[0].(*ast.Case); len(c.Stmts) != 0 {
		t.Fatalf("case 1 must be empty, got %d stmts", len(c.Stmts))
	}
	if c := body.Items[1].(*ast.Case); len(c.Stmts) != 2 {
		t.Fatalf("case 2 must own 2 stmts, got %d", len(c.Stmts))
	}
	if d := body.Items[2].(*ast.Default); len(d.Stmts) != 1 {
		t.Fatalf("default must own 1 stmt, got %d", len(d.Stmts))
	}
}

func TestControlStatements(t *testing.T) {
	src := `int f(int n) {
	int i;
	for (i = 0; i < n; i++) ;
	for (int j = 0, k = 1; ; ) break;
	while (n) n--;
	do { n++; } while (n < 10);
	if (n) return 1; else if (n > 2) return 2; else return 3;
again:
	goto again;
}`
	fd := mustParse(t, src).Decls[0].(*ast.FuncDef)
	want := []ast.Kind{
		ast.KindDecl, ast.KindFor, ast.KindFor, ast.KindWhile, ast.KindDoWhile, ast.KindIf, ast.KindLabel,
	}
	if len(fd.Body.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(fd.Body.Items))
	}
	for i, k := range want {
		if got := fd.Body.Items[i].Kind(); got != k {
			t.Errorf("item %d: got %v, want %v", i, got, k)
		}
	}
	f2 := fd.Body.Items[2].(*ast.For)
	if dl, ok := f2.Init.(*ast.DeclList); !ok || len(dl.Decls) != 2 || f2.Cond != nil || f2.Next != nil {
		t.Fatalf("unexpected for header %s", ast.Describe(f2))
	}
	ifs := fd.Body.Items[5].(*ast.If)
	if _, ok := ifs.Else.(*ast.If); !ok {
		t.Fatal("else-if chain must nest If in Else")
	}
}

func TestLabelAtBlockEnd(t *testing.T) {
	lbl := firstBodyItem(t, "void f(void) { out: }").(*ast.Label)
	if _, ok := lbl.Stmt.(*ast.EmptyStmt); !ok {
		t.Fatalf("got %s", ast.Describe(lbl.Stmt))
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing semicolon", "int f(void) { return 1 }", diag.SynExpectSemicolon},
		{"unclosed block", "int f(void) { return 1;", diag.SynUnclosedBrace},
		{"bad expression", "int f(void) { return ); }", diag.SynExpectExpression},
		{"missing type", "x;", diag.SynExpectType},
		{"unclosed paren", "int f(void) { g(1; }", diag.SynUnclosedParen},
		{"compound literal", "typedef int T;\nint f(void) { return (T){1}; }", diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSource(t, tt.src)
			if !bag.HasErrors() {
				t.Fatal("expected errors")
			}
			first := bag.Items()[0]
			if first.Code != tt.code {
				t.Fatalf("expected %v first, got %s", tt.code, diagnosticsSummary(bag))
			}
		})
	}
}

func TestNestingDepthIsBounded(t *testing.T) {
	depth := DefaultMaxDepth + 10
	src := "int f(void) { return " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth) + "; }"
	_, bag := parseSource(t, src)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynTooDeep {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynTooDeep, got %s", diagnosticsSummary(bag))
	}
}

func TestRecoveryContinuesAfterBadDeclaration(t *testing.T) {
	file, bag := parseSource(t, "int a = ;\nint b;\n")
	if !bag.HasErrors() {
		t.Fatal("expected an error")
	}
	last := file.Decls[len(file.Decls)-1]
	if d, ok := last.(*ast.Decl); !ok || d.Name != "b" {
		t.Fatalf("parser must recover and see b, got %s", ast.Describe(last))
	}
}

func TestFixturesParse(t *testing.T) {
	fixtures := []struct {
		name  string
		funcs int
	}{
		{"prototypes.c", 4},
		{"pointers.c", 4},
		{"nested_struct.c", 1},
		{"switch_loops.c", 2},
		{"struct_param.c", 2},
	}
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			file := mustParse(t, readFixture(t, fx.name))
			funcs := 0
			for _, n := range file.Decls {
				if n.Kind() == ast.KindFuncDef {
					funcs++
				}
			}
			if funcs != fx.funcs {
				t.Fatalf("expected %d functions, got %d", fx.funcs, funcs)
			}
		})
	}
}
