package parser

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(src))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := ParseFile(lx, Options{Reporter: rep})
	if res.Bag != bag {
		t.Fatal("result must expose the reporter bag")
	}
	return res.File, bag
}

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s\nsource:\n%s", diagnosticsSummary(bag), src)
	}
	return file
}

// firstBodyItem returns the first statement of the only function in src.
func firstBodyItem(t *testing.T, src string) ast.Stmt {
	t.Helper()
	file := mustParse(t, src)
	for _, n := range file.Decls {
		if fd, ok := n.(*ast.FuncDef); ok && len(fd.Body.Items) > 0 {
			return fd.Body.Items[0]
		}
	}
	t.Fatalf("no function body items in %q", src)
	return nil
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}
