package parser

import (
	"testing"

	"cstyle/internal/ast"
)

func TestSplitDeclarators(t *testing.T) {
	file := mustParse(t, "int a, *b = 0, c[4];")
	if len(file.Decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(file.Decls))
	}
	names := []string{"a", "b", "c"}
	for i, n := range file.Decls {
		d, ok := n.(*ast.Decl)
		if !ok || d.Name != names[i] {
			t.Fatalf("decl %d: got %s", i, ast.Describe(n))
		}
	}
	if _, ok := file.Decls[1].(*ast.Decl).Type.(*ast.PtrDecl); !ok {
		t.Fatal("b must be a pointer")
	}
	if file.Decls[1].(*ast.Decl).Init == nil {
		t.Fatal("b must keep its initializer")
	}
	if _, ok := file.Decls[2].(*ast.Decl).Type.(*ast.ArrayDecl); !ok {
		t.Fatal("c must be an array")
	}
}

func TestSharedStructBodyStaysGrouped(t *testing.T) {
	file := mustParse(t, "struct P { int x; int y; } a, b;")
	if len(file.Decls) != 1 {
		t.Fatalf("expected one grouped declaration, got %d", len(file.Decls))
	}
	dl, ok := file.Decls[0].(*ast.DeclList)
	if !ok || len(dl.Decls) != 2 {
		t.Fatalf("expected DeclList of 2, got %s", ast.DumpString(file.Decls[0]))
	}
}

func TestDeclaratorShapes(t *testing.T) {
	tests := []struct {
		src  string
		want []ast.Kind
	}{
		{"int *a[3];", []ast.Kind{ast.KindArrayDecl, ast.KindPtrDecl, ast.KindTypeDecl}},
		{"int (*a)[3];", []ast.Kind{ast.KindPtrDecl, ast.KindArrayDecl, ast.KindTypeDecl}},
		{"int (*fp)(int, char *);", []ast.Kind{ast.KindPtrDecl, ast.KindFuncDecl, ast.KindTypeDecl}},
		{"char **argv;", []ast.Kind{ast.KindPtrDecl, ast.KindPtrDecl, ast.KindTypeDecl}},
		{"int m[2][3];", []ast.Kind{ast.KindArrayDecl, ast.KindArrayDecl, ast.KindTypeDecl}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			file := mustParse(t, tt.src)
			var got []ast.Kind
			var typ ast.Node = file.Decls[0].(*ast.Decl).Type
			for typ != nil {
				got = append(got, typ.Kind())
				switch v := typ.(type) {
				case *ast.PtrDecl:
					typ = v.Type
				case *ast.ArrayDecl:
					typ = v.Type
				case *ast.FuncDecl:
					typ = v.Type
				default:
					typ = nil
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestQualifiersAndStorage(t *testing.T) {
	file := mustParse(t, "static const unsigned long *const p;")
	d := file.Decls[0].(*ast.Decl)
	if len(d.Storage) != 1 || d.Storage[0] != "static" {
		t.Fatalf("storage: %v", d.Storage)
	}
	ptr := d.Type.(*ast.PtrDecl)
	if len(ptr.Quals) != 1 || ptr.Quals[0] != "const" {
		t.Fatalf("pointer quals: %v", ptr.Quals)
	}
	td := ptr.Type.(*ast.TypeDecl)
	if len(td.Quals) != 1 || td.Quals[0] != "const" {
		t.Fatalf("base quals: %v", td.Quals)
	}
	if it := td.Type.(*ast.IdentifierType); len(it.Names) != 2 {
		t.Fatalf("base names: %v", it.Names)
	}
}

func TestTypedefNamesStartDeclarations(t *testing.T) {
	src := "typedef struct node Node;\nint f(void) { Node *n; n = 0; return 0; }"
	file := mustParse(t, src)
	if _, ok := file.Decls[0].(*ast.Typedef); !ok {
		t.Fatalf("expected Typedef, got %s", ast.Describe(file.Decls[0]))
	}
	fd := file.Decls[1].(*ast.FuncDef)
	if d, ok := fd.Body.Items[0].(*ast.Decl); !ok || d.Name != "n" {
		t.Fatalf("Node *n must parse as a declaration, got %s", ast.Describe(fd.Body.Items[0]))
	}
}

func TestParameterShadowsTypedef(t *testing.T) {
	src := "typedef int T;\nint f(int T) { return T * 2; }"
	fd := mustParse(t, src).Decls[1].(*ast.FuncDef)
	ret := fd.Body.Items[0].(*ast.Return)
	if bin, ok := ret.Expr.(*ast.BinaryOp); !ok || bin.Op != "*" {
		t.Fatalf("T * 2 must be a multiplication, got %s", ast.DumpString(ret.Expr))
	}
}

func TestEnumAndBitfields(t *testing.T) {
	file := mustParse(t, "enum color { RED, GREEN = 2, BLUE, };\nstruct flags { unsigned a : 1; unsigned : 3; };")
	en := file.Decls[0].(*ast.Decl).Type.(*ast.TypeDecl).Type.(*ast.Enum)
	if len(en.Values) != 3 || en.Values[1].Value == nil {
		t.Fatalf("unexpected enum %s", ast.DumpString(en))
	}
	st := file.Decls[1].(*ast.Decl).Type.(*ast.TypeDecl).Type.(*ast.Struct)
	if len(st.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(st.Members))
	}
	for _, m := range st.Members {
		if m.(*ast.Decl).BitSize == nil {
			t.Fatalf("member without width: %s", ast.Describe(m))
		}
	}
}

func TestFunctionDefinitionSignature(t *testing.T) {
	file := mustParse(t, "static inline int add(int a, int b, ...) { return a + b; }")
	fd := file.Decls[0].(*ast.FuncDef)
	if fd.Decl.Name != "add" || len(fd.Decl.FuncSpecs) != 1 {
		t.Fatalf("unexpected decl %s", ast.Describe(fd.Decl))
	}
	fn := fd.Decl.Type.(*ast.FuncDecl)
	if len(fn.Params.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(fn.Params.Params))
	}
	if _, ok := fn.Params.Params[2].(*ast.EllipsisParam); !ok {
		t.Fatal("last param must be the ellipsis")
	}
}

func TestInitializerLists(t *testing.T) {
	d := mustParse(t, "int m[2][2] = { {1, 2}, {3, 4}, };").Decls[0].(*ast.Decl)
	il, ok := d.Init.(*ast.InitList)
	if !ok || len(il.Exprs) != 2 {
		t.Fatalf("unexpected init %s", ast.DumpString(d.Init))
	}
	if _, ok := il.Exprs[0].(*ast.InitList); !ok {
		t.Fatal("nested initializer list expected")
	}
}
