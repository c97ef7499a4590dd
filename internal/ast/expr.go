package ast

// ConstKind classifies a literal constant.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstChar
	ConstString
)

var constKindNames = [...]string{"int", "float", "char", "string"}

func (k ConstKind) String() string {
	if int(k) < len(constKindNames) {
		return constKindNames[k]
	}
	return "const?"
}

type ID struct {
	Pos
	Name string
}

// Constant keeps the literal text verbatim. Adjacent string literals are
// joined with a single space.
type Constant struct {
	Pos
	Type  ConstKind
	Value string
}

type BinaryOp struct {
	Pos
	Op string
	X  Expr
	Y  Expr
}

// UnaryOp covers prefix operators, sizeof and the postfix forms "p++" and "p--".
// For sizeof X may be a *Typename.
type UnaryOp struct {
	Pos
	Op string
	X  Expr
}

type Assignment struct {
	Pos
	Op string
	L  Expr
	R  Expr
}

type TernaryOp struct {
	Pos
	Cond Expr
	Then Expr
	Else Expr
}

// FuncCall with nil Args is a call without arguments.
type FuncCall struct {
	Pos
	Fn   Expr
	Args *ExprList
}

// ExprList is a comma-separated expression list: call arguments or the comma operator.
type ExprList struct {
	Pos
	Exprs []Expr
}

type ArrayRef struct {
	Pos
	X     Expr
	Index Expr
}

// StructRef is "X.Field" or, with Arrow, "X->Field".
type StructRef struct {
	Pos
	X     Expr
	Arrow bool
	Field string
}

type Cast struct {
	Pos
	To *Typename
	X  Expr
}

type InitList struct {
	Pos
	Exprs []Expr
}

func (*ID) Kind() Kind         { return KindID }
func (*Constant) Kind() Kind   { return KindConstant }
func (*BinaryOp) Kind() Kind   { return KindBinaryOp }
func (*UnaryOp) Kind() Kind    { return KindUnaryOp }
func (*Assignment) Kind() Kind { return KindAssignment }
func (*TernaryOp) Kind() Kind  { return KindTernaryOp }
func (*FuncCall) Kind() Kind   { return KindFuncCall }
func (*ExprList) Kind() Kind   { return KindExprList }
func (*ArrayRef) Kind() Kind   { return KindArrayRef }
func (*StructRef) Kind() Kind  { return KindStructRef }
func (*Cast) Kind() Kind       { return KindCast }
func (*InitList) Kind() Kind   { return KindInitList }

func exprsToNodes(xs []Expr) []Node {
	out := make([]Node, 0, len(xs))
	for _, x := range xs {
		out = append(out, x)
	}
	return out
}

func (*ID) Children() []Node           { return nil }
func (*Constant) Children() []Node     { return nil }
func (e *BinaryOp) Children() []Node   { return collect(e.X, e.Y) }
func (e *UnaryOp) Children() []Node    { return collect(e.X) }
func (e *Assignment) Children() []Node { return collect(e.L, e.R) }
func (e *TernaryOp) Children() []Node  { return collect(e.Cond, e.Then, e.Else) }
func (e *FuncCall) Children() []Node   { return collect(e.Fn, e.Args) }
func (e *ExprList) Children() []Node   { return exprsToNodes(e.Exprs) }
func (e *ArrayRef) Children() []Node   { return collect(e.X, e.Index) }
func (e *StructRef) Children() []Node  { return collect(e.X) }
func (e *Cast) Children() []Node       { return collect(e.To, e.X) }
func (e *InitList) Children() []Node   { return exprsToNodes(e.Exprs) }

func (*ID) isNode()         {}
func (*Constant) isNode()   {}
func (*BinaryOp) isNode()   {}
func (*UnaryOp) isNode()    {}
func (*Assignment) isNode() {}
func (*TernaryOp) isNode()  {}
func (*FuncCall) isNode()   {}
func (*ExprList) isNode()   {}
func (*ArrayRef) isNode()   {}
func (*StructRef) isNode()  {}
func (*Cast) isNode()       {}
func (*InitList) isNode()   {}

func (*ID) exprNode()         {}
func (*Constant) exprNode()   {}
func (*BinaryOp) exprNode()   {}
func (*UnaryOp) exprNode()    {}
func (*Assignment) exprNode() {}
func (*TernaryOp) exprNode()  {}
func (*FuncCall) exprNode()   {}
func (*ExprList) exprNode()   {}
func (*ArrayRef) exprNode()   {}
func (*StructRef) exprNode()  {}
func (*Cast) exprNode()       {}
func (*InitList) exprNode()   {}
