package format

import (
	"fmt"

	"cstyle/internal/ast"
)

// UnsupportedNodeKindError is returned for a node the printer has no rule for.
type UnsupportedNodeKindError struct {
	Kind ast.Kind
	Node ast.Node
}

func (e *UnsupportedNodeKindError) Error() string {
	return fmt.Sprintf("format: no rendering rule for %s node", e.Kind)
}

// DepthError is returned when the tree nests deeper than the printer allows.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("format: tree nesting exceeds %d levels", e.Limit)
}

// bailout несёт ошибку из глубины рекурсии до Format.
type bailout struct {
	err error
}

func (p *printer) fail(err error) {
	panic(bailout{err: err})
}

func (p *printer) unsupported(n ast.Node) {
	kind := ast.KindInvalid
	if n != nil {
		kind = n.Kind()
	}
	p.fail(&UnsupportedNodeKindError{Kind: kind, Node: n})
}

func (p *printer) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.fail(&DepthError{Limit: p.maxDepth})
	}
}

func (p *printer) leave() {
	p.depth--
}
