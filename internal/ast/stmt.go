package ast

// Compound is a braced block. Items holds statements and declarations.
type Compound struct {
	Pos
	Items []Stmt
}

type ExprStmt struct {
	Pos
	X Expr
}

// If with a nil Else has no else branch.
type If struct {
	Pos
	Cond Expr
	Then Stmt
	Else Stmt
}

type While struct {
	Pos
	Cond Expr
	Body Stmt
}

type DoWhile struct {
	Pos
	Body Stmt
	Cond Expr
}

// For header parts are optional. Init is an Expr or a *DeclList.
type For struct {
	Pos
	Init Node
	Cond Expr
	Next Expr
	Body Stmt
}

type Switch struct {
	Pos
	Cond Expr
	Body Stmt
}

// Case owns the statements that follow its label up to the next label.
type Case struct {
	Pos
	Expr  Expr
	Stmts []Stmt
}

type Default struct {
	Pos
	Stmts []Stmt
}

type Return struct {
	Pos
	Expr Expr
}

type Break struct{ Pos }

type Continue struct{ Pos }

type Goto struct {
	Pos
	Label string
}

type Label struct {
	Pos
	Name string
	Stmt Stmt
}

type EmptyStmt struct{ Pos }

func (*Compound) Kind() Kind  { return KindCompound }
func (*ExprStmt) Kind() Kind  { return KindExprStmt }
func (*If) Kind() Kind        { return KindIf }
func (*While) Kind() Kind     { return KindWhile }
func (*DoWhile) Kind() Kind   { return KindDoWhile }
func (*For) Kind() Kind       { return KindFor }
func (*Switch) Kind() Kind    { return KindSwitch }
func (*Case) Kind() Kind      { return KindCase }
func (*Default) Kind() Kind   { return KindDefault }
func (*Return) Kind() Kind    { return KindReturn }
func (*Break) Kind() Kind     { return KindBreak }
func (*Continue) Kind() Kind  { return KindContinue }
func (*Goto) Kind() Kind      { return KindGoto }
func (*Label) Kind() Kind     { return KindLabel }
func (*EmptyStmt) Kind() Kind { return KindEmptyStmt }

func stmtsToNodes(items []Stmt) []Node {
	out := make([]Node, 0, len(items))
	for _, s := range items {
		out = append(out, s)
	}
	return out
}

func (c *Compound) Children() []Node { return stmtsToNodes(c.Items) }
func (s *ExprStmt) Children() []Node { return collect(s.X) }
func (s *If) Children() []Node       { return collect(s.Cond, s.Then, s.Else) }
func (s *While) Children() []Node    { return collect(s.Cond, s.Body) }
func (s *DoWhile) Children() []Node  { return collect(s.Body, s.Cond) }
func (s *For) Children() []Node      { return collect(s.Init, s.Cond, s.Next, s.Body) }
func (s *Switch) Children() []Node   { return collect(s.Cond, s.Body) }

func (s *Case) Children() []Node {
	return append(collect(s.Expr), stmtsToNodes(s.Stmts)...)
}

func (s *Default) Children() []Node { return stmtsToNodes(s.Stmts) }
func (s *Return) Children() []Node  { return collect(s.Expr) }
func (*Break) Children() []Node     { return nil }
func (*Continue) Children() []Node  { return nil }
func (*Goto) Children() []Node      { return nil }
func (s *Label) Children() []Node   { return collect(s.Stmt) }
func (*EmptyStmt) Children() []Node { return nil }

func (*Compound) isNode()  {}
func (*ExprStmt) isNode()  {}
func (*If) isNode()        {}
func (*While) isNode()     {}
func (*DoWhile) isNode()   {}
func (*For) isNode()       {}
func (*Switch) isNode()    {}
func (*Case) isNode()      {}
func (*Default) isNode()   {}
func (*Return) isNode()    {}
func (*Break) isNode()     {}
func (*Continue) isNode()  {}
func (*Goto) isNode()      {}
func (*Label) isNode()     {}
func (*EmptyStmt) isNode() {}

func (*Compound) stmtNode()  {}
func (*ExprStmt) stmtNode()  {}
func (*If) stmtNode()        {}
func (*While) stmtNode()     {}
func (*DoWhile) stmtNode()   {}
func (*For) stmtNode()       {}
func (*Switch) stmtNode()    {}
func (*Case) stmtNode()      {}
func (*Default) stmtNode()   {}
func (*Return) stmtNode()    {}
func (*Break) stmtNode()     {}
func (*Continue) stmtNode()  {}
func (*Goto) stmtNode()      {}
func (*Label) stmtNode()     {}
func (*EmptyStmt) stmtNode() {}
