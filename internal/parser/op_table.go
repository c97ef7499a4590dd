package parser

import (
	"cstyle/internal/ast"
	"cstyle/internal/token"
)

// binaryOp возвращает текст бинарного оператора и его приоритет.
// Приоритет 0 означает, что токен не бинарный оператор.
func binaryOp(kind token.Kind) (string, int) {
	var op string
	switch kind {
	case token.OrOr:
		op = "||"
	case token.AndAnd:
		op = "&&"
	case token.Pipe:
		op = "|"
	case token.Caret:
		op = "^"
	case token.Amp:
		op = "&"
	case token.EqEq:
		op = "=="
	case token.BangEq:
		op = "!="
	case token.Lt:
		op = "<"
	case token.Gt:
		op = ">"
	case token.LtEq:
		op = "<="
	case token.GtEq:
		op = ">="
	case token.Shl:
		op = "<<"
	case token.Shr:
		op = ">>"
	case token.Plus:
		op = "+"
	case token.Minus:
		op = "-"
	case token.Star:
		op = "*"
	case token.Slash:
		op = "/"
	case token.Percent:
		op = "%"
	default:
		return "", 0
	}
	return op, ast.BinaryPrec(op)
}

// assignOp reports whether kind is an assignment operator (правоассоциативно).
func assignOp(kind token.Kind) (string, bool) {
	switch kind {
	case token.Assign:
		return "=", true
	case token.PlusAssign:
		return "+=", true
	case token.MinusAssign:
		return "-=", true
	case token.StarAssign:
		return "*=", true
	case token.SlashAssign:
		return "/=", true
	case token.PercentAssign:
		return "%=", true
	case token.AmpAssign:
		return "&=", true
	case token.PipeAssign:
		return "|=", true
	case token.CaretAssign:
		return "^=", true
	case token.ShlAssign:
		return "<<=", true
	case token.ShrAssign:
		return ">>=", true
	}
	return "", false
}

// prefixOp — унарные префиксные операторы, применяемые к cast-expression.
func prefixOp(kind token.Kind) (string, bool) {
	switch kind {
	case token.Amp:
		return "&", true
	case token.Star:
		return "*", true
	case token.Plus:
		return "+", true
	case token.Minus:
		return "-", true
	case token.Tilde:
		return "~", true
	case token.Bang:
		return "!", true
	}
	return "", false
}
