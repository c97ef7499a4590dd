package ast

import "cstyle/internal/source"

// File is a translation unit. Decls holds *FuncDef, *Decl, *DeclList and *Typedef.
type File struct {
	Pos
	Source *source.File
	Decls  []Node
}

// LineOf returns the 0-based source line where n starts, or -1 if the file
// has no source attached.
func (f *File) LineOf(n Node) int {
	if f == nil || f.Source == nil || isNil(n) {
		return -1
	}
	return f.Source.LineOf(n.Span().Start)
}

// EndLineOf returns the 0-based source line of the last byte of n.
func (f *File) EndLineOf(n Node) int {
	if f == nil || f.Source == nil || isNil(n) {
		return -1
	}
	sp := n.Span()
	if sp.End > sp.Start {
		return f.Source.LineOf(sp.End - 1)
	}
	return f.Source.LineOf(sp.Start)
}

// FuncDef is a function definition. Decl carries the signature (its Type is a FuncDecl).
type FuncDef struct {
	Pos
	Decl *Decl
	Body *Compound
}

// Decl declares one name. Storage holds storage-class specifiers
// (static, extern, ...) and FuncSpecs holds inline.
type Decl struct {
	Pos
	Name      string
	Storage   []string
	FuncSpecs []string
	Type      Type
	Init      Expr
	BitSize   Expr
}

// DeclList keeps several declarators that share one base type carrying a
// struct or enum body, and the declarations of a for-loop header.
type DeclList struct {
	Pos
	Decls []Stmt // *Decl or *Typedef
}

// Typedef introduces Name as an alias for Type.
type Typedef struct {
	Pos
	Name string
	Type Type
}

// TypeDecl is the innermost declarator layer: the declared name (empty for
// abstract declarators), qualifiers of the base type and the base type itself.
type TypeDecl struct {
	Pos
	DeclName string
	Quals    []string
	Type     TypeSpec
}

// IdentifierType is a builtin or typedef-named base type, e.g. "unsigned long".
type IdentifierType struct {
	Pos
	Names []string
}

type PtrDecl struct {
	Pos
	Quals []string
	Type  Type
}

type ArrayDecl struct {
	Pos
	Type Type
	Dim  Expr
}

// FuncDecl is a function declarator. Params is nil for "()".
type FuncDecl struct {
	Pos
	Params *ParamList
	Type   Type
}

// ParamList holds *Decl, *Typename and *EllipsisParam entries.
type ParamList struct {
	Pos
	Params []Node
}

type EllipsisParam struct {
	Pos
}

// Typename is an abstract type used in casts, sizeof and unnamed parameters.
type Typename struct {
	Pos
	Type Type
}

// Struct is a struct or union specifier. Members holds *Decl and *DeclList.
type Struct struct {
	Pos
	Union   bool
	Name    string
	HasBody bool
	Members []Node
}

type Enum struct {
	Pos
	Name    string
	HasBody bool
	Values  []*Enumerator
}

type Enumerator struct {
	Pos
	Name  string
	Value Expr
}

func (*File) Kind() Kind           { return KindFile }
func (*FuncDef) Kind() Kind        { return KindFuncDef }
func (*Decl) Kind() Kind           { return KindDecl }
func (*DeclList) Kind() Kind       { return KindDeclList }
func (*Typedef) Kind() Kind        { return KindTypedef }
func (*TypeDecl) Kind() Kind       { return KindTypeDecl }
func (*IdentifierType) Kind() Kind { return KindIdentifierType }
func (*PtrDecl) Kind() Kind        { return KindPtrDecl }
func (*ArrayDecl) Kind() Kind      { return KindArrayDecl }
func (*FuncDecl) Kind() Kind       { return KindFuncDecl }
func (*ParamList) Kind() Kind      { return KindParamList }
func (*EllipsisParam) Kind() Kind  { return KindEllipsisParam }
func (*Typename) Kind() Kind       { return KindTypename }
func (*Enum) Kind() Kind           { return KindEnum }
func (*Enumerator) Kind() Kind     { return KindEnumerator }

func (s *Struct) Kind() Kind {
	if s.Union {
		return KindUnion
	}
	return KindStruct
}

func (f *File) Children() []Node    { return f.Decls }
func (f *FuncDef) Children() []Node { return collect(f.Decl, f.Body) }
func (d *Decl) Children() []Node    { return collect(d.Type, d.Init, d.BitSize) }

func (d *DeclList) Children() []Node { return stmtsToNodes(d.Decls) }

func (t *Typedef) Children() []Node      { return collect(t.Type) }
func (t *TypeDecl) Children() []Node     { return collect(t.Type) }
func (*IdentifierType) Children() []Node { return nil }
func (p *PtrDecl) Children() []Node      { return collect(p.Type) }
func (a *ArrayDecl) Children() []Node    { return collect(a.Type, a.Dim) }
func (f *FuncDecl) Children() []Node     { return collect(f.Params, f.Type) }
func (p *ParamList) Children() []Node    { return p.Params }
func (*EllipsisParam) Children() []Node  { return nil }
func (t *Typename) Children() []Node     { return collect(t.Type) }
func (s *Struct) Children() []Node       { return s.Members }

func (e *Enum) Children() []Node {
	out := make([]Node, 0, len(e.Values))
	for _, v := range e.Values {
		out = append(out, v)
	}
	return out
}

func (e *Enumerator) Children() []Node { return collect(e.Value) }

func (*File) isNode()           {}
func (*FuncDef) isNode()        {}
func (*Decl) isNode()           {}
func (*DeclList) isNode()       {}
func (*Typedef) isNode()        {}
func (*TypeDecl) isNode()       {}
func (*IdentifierType) isNode() {}
func (*PtrDecl) isNode()        {}
func (*ArrayDecl) isNode()      {}
func (*FuncDecl) isNode()       {}
func (*ParamList) isNode()      {}
func (*EllipsisParam) isNode()  {}
func (*Typename) isNode()       {}
func (*Struct) isNode()         {}
func (*Enum) isNode()           {}
func (*Enumerator) isNode()     {}

func (*Decl) stmtNode()     {}
func (*DeclList) stmtNode() {}
func (*Typedef) stmtNode()  {}

func (*TypeDecl) typeNode()  {}
func (*PtrDecl) typeNode()   {}
func (*ArrayDecl) typeNode() {}
func (*FuncDecl) typeNode()  {}

func (*IdentifierType) typeSpecNode() {}
func (*Struct) typeSpecNode()         {}
func (*Enum) typeSpecNode()           {}

// sizeof(T) и каст принимают Typename в позиции выражения.
func (*Typename) exprNode() {}
