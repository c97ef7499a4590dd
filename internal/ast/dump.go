package ast

import (
	"fmt"
	"io"
	"strings"
)

// Describe returns a one-line summary of n without its children and without spans.
func Describe(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	k := n.Kind().String()
	switch v := n.(type) {
	case *Decl:
		return fmt.Sprintf("%s %s storage=%v funcspec=%v init=%t bits=%t", k, v.Name, v.Storage, v.FuncSpecs, v.Init != nil, v.BitSize != nil)
	case *Typedef:
		return k + " " + v.Name
	case *TypeDecl:
		return fmt.Sprintf("%s %q quals=%v", k, v.DeclName, v.Quals)
	case *IdentifierType:
		return k + " " + strings.Join(v.Names, " ")
	case *PtrDecl:
		return fmt.Sprintf("%s quals=%v", k, v.Quals)
	case *ArrayDecl:
		return fmt.Sprintf("%s dim=%t", k, v.Dim != nil)
	case *FuncDecl:
		return fmt.Sprintf("%s params=%t", k, v.Params != nil)
	case *Struct:
		return fmt.Sprintf("%s %q body=%t", k, v.Name, v.HasBody)
	case *Enum:
		return fmt.Sprintf("%s %q body=%t", k, v.Name, v.HasBody)
	case *Enumerator:
		return fmt.Sprintf("%s %s value=%t", k, v.Name, v.Value != nil)
	case *If:
		return fmt.Sprintf("%s else=%t", k, v.Else != nil)
	case *For:
		return fmt.Sprintf("%s init=%t cond=%t next=%t", k, !isNil(v.Init), v.Cond != nil, v.Next != nil)
	case *Return:
		return fmt.Sprintf("%s value=%t", k, v.Expr != nil)
	case *Goto:
		return k + " " + v.Label
	case *Label:
		return k + " " + v.Name
	case *ID:
		return k + " " + v.Name
	case *Constant:
		return fmt.Sprintf("%s %s %s", k, v.Type, v.Value)
	case *BinaryOp:
		return k + " " + v.Op
	case *UnaryOp:
		return k + " " + v.Op
	case *Assignment:
		return k + " " + v.Op
	case *FuncCall:
		return fmt.Sprintf("%s args=%t", k, v.Args != nil)
	case *StructRef:
		op := "."
		if v.Arrow {
			op = "->"
		}
		return k + " " + op + v.Field
	}
	return k
}

// Dump writes an indented tree of n, one node per line.
func Dump(w io.Writer, n Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Describe(n)); err != nil {
		return err
	}
	if isNil(n) {
		return nil
	}
	for _, c := range n.Children() {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// DumpString is Dump into a string.
func DumpString(n Node) string {
	var sb strings.Builder
	_ = Dump(&sb, n)
	return sb.String()
}

// Equal reports whether a and b have the same shape and attributes, ignoring spans.
func Equal(a, b Node) bool {
	return DumpString(a) == DumpString(b)
}
