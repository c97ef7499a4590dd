package ast_test

import (
	"strings"
	"testing"

	"cstyle/internal/ast"
	"cstyle/internal/source"
)

func intDecl(name string, sp source.Span) *ast.Decl {
	return &ast.Decl{
		Pos:  ast.At(sp),
		Name: name,
		Type: &ast.TypeDecl{DeclName: name, Type: &ast.IdentifierType{Names: []string{"int"}}},
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := intDecl("x", source.Span{Start: 0, End: 6})
	b := intDecl("x", source.Span{Start: 40, End: 52})
	if !ast.Equal(a, b) {
		t.Fatalf("expected equal trees:\n%s\n%s", ast.DumpString(a), ast.DumpString(b))
	}
	if ast.Equal(a, intDecl("y", source.Span{})) {
		t.Fatal("different names must not compare equal")
	}
}

func TestDumpShowsOptionalParts(t *testing.T) {
	withElse := &ast.If{Cond: &ast.ID{Name: "c"}, Then: &ast.EmptyStmt{}, Else: &ast.EmptyStmt{}}
	noElse := &ast.If{Cond: &ast.ID{Name: "c"}, Then: &ast.EmptyStmt{}}
	if ast.Equal(withElse, noElse) {
		t.Fatal("else presence must be visible in the dump")
	}

	f1 := &ast.For{Init: &ast.ID{Name: "x"}, Body: &ast.EmptyStmt{}}
	f2 := &ast.For{Cond: &ast.ID{Name: "x"}, Body: &ast.EmptyStmt{}}
	if ast.Equal(f1, f2) {
		t.Fatal("for header slots must be distinguished")
	}
}

func TestChildrenSkipTypedNil(t *testing.T) {
	call := &ast.FuncCall{Fn: &ast.ID{Name: "f"}}
	if n := len(call.Children()); n != 1 {
		t.Fatalf("expected only the callee, got %d children", n)
	}
	fd := &ast.FuncDecl{Type: &ast.TypeDecl{DeclName: "f"}}
	if n := len(fd.Children()); n != 1 {
		t.Fatalf("expected only the result type, got %d children", n)
	}
}

func TestInspectVisitsAll(t *testing.T) {
	expr := &ast.BinaryOp{
		Op: "+",
		X:  &ast.ID{Name: "a"},
		Y:  &ast.BinaryOp{Op: "*", X: &ast.ID{Name: "b"}, Y: &ast.Constant{Type: ast.ConstInt, Value: "2"}},
	}
	var names []string
	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.ID); ok {
			names = append(names, id.Name)
		}
		return true
	})
	if strings.Join(names, ",") != "a,b" {
		t.Fatalf("unexpected visit order %v", names)
	}
}

func TestAllKindsHaveNames(t *testing.T) {
	for _, k := range ast.AllKinds() {
		if strings.HasPrefix(k.String(), "Kind(") {
			t.Errorf("kind %d has no name", k)
		}
	}
	if ast.AllKinds()[0] != ast.KindFile {
		t.Fatal("AllKinds must skip KindInvalid")
	}
}

func TestStructKindFollowsUnionFlag(t *testing.T) {
	if (&ast.Struct{Union: true}).Kind() != ast.KindUnion {
		t.Fatal("union flag must report KindUnion")
	}
	if (&ast.Struct{}).Kind() != ast.KindStruct {
		t.Fatal("plain struct must report KindStruct")
	}
}
