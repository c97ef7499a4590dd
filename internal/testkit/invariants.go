// Package testkit holds structural checks shared by parser and printer tests.
package testkit

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"

	"cstyle/internal/ast"
	"cstyle/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every non-zero node span points into sf and lies within its content
// 2) every non-zero span has Start <= End
// 3) top-level declarations start in source order
func CheckSpanInvariants(file *ast.File, sf *source.File) error {
	if file == nil || sf == nil {
		return fmt.Errorf("nil file or source")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var walk func(n ast.Node) error
	walk = func(n ast.Node) error {
		if isNil(n) {
			return nil
		}
		sp := n.Span()
		if sp != (source.Span{}) {
			if sp.File != sf.ID {
				return fmt.Errorf("%s: span points to file %d, want %d", ast.Describe(n), sp.File, sf.ID)
			}
			if sp.Start > sp.End {
				return fmt.Errorf("%s: inverted span %v", ast.Describe(n), sp)
			}
			if sp.End > lenContent {
				return fmt.Errorf("%s: span end beyond content: %d > %d", ast.Describe(n), sp.End, lenContent)
			}
		}
		for _, c := range n.Children() {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	var prev uint32
	for i, d := range file.Decls {
		if err := walk(d); err != nil {
			return err
		}
		sp := d.Span()
		if sp == (source.Span{}) {
			continue
		}
		start := sp.Start
		if i > 0 && start < prev {
			return fmt.Errorf("declaration %d (%s) starts at %d before previous start %d", i, ast.Describe(d), start, prev)
		}
		prev = start
	}
	return nil
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
