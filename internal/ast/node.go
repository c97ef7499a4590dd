package ast

import "cstyle/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
	// Children returns the direct non-nil children in source order.
	Children() []Node
	isNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a block item: a statement or a declaration.
type Stmt interface {
	Node
	stmtNode()
}

// Type is a declarator layer: TypeDecl, PtrDecl, ArrayDecl or FuncDecl.
type Type interface {
	Node
	typeNode()
}

// TypeSpec is a base type specifier: IdentifierType, Struct or Enum.
type TypeSpec interface {
	Node
	typeSpecNode()
}

// Pos carries the source span of a node.
type Pos struct {
	Src source.Span
}

// At builds a Pos from a span.
func At(sp source.Span) Pos { return Pos{Src: sp} }

func (p Pos) Span() source.Span { return p.Src }

func collect(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

// isNil ловит typed-nil внутри интерфейса, типичный для опциональных полей.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Compound:
		return v == nil
	case *ParamList:
		return v == nil
	case *ExprList:
		return v == nil
	case *Typename:
		return v == nil
	case *DeclList:
		return v == nil
	case *Decl:
		return v == nil
	}
	return false
}

// Inspect walks the tree depth-first, calling fn for each node. If fn returns
// false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, fn)
	}
}
