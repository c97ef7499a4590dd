// Package ast describes the syntax tree of the C subset understood by cstyle.
//
// The tree is a plain pointer tree: each node is a concrete struct that
// implements Node and reports its Kind. Expressions, statements, type
// modifiers and base type specifiers are separated by the Expr, Stmt, Type
// and TypeSpec interfaces. All of these are sealed: only types from this
// package implement them, so a type switch over Kind is exhaustive.
package ast
