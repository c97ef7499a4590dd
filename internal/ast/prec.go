package ast

// Приоритеты выражений C: чем больше число, тем сильнее связывание.
const (
	PrecComma = iota + 1
	PrecAssign
	PrecTernary
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecUnary   // prefix operators, casts, sizeof
	PrecPostfix // postfix operators and primary expressions
)

// BinaryPrec returns the precedence of a binary operator, or 0 if op is not one.
func BinaryPrec(op string) int {
	switch op {
	case "||":
		return PrecLogicalOr
	case "&&":
		return PrecLogicalAnd
	case "|":
		return PrecBitOr
	case "^":
		return PrecBitXor
	case "&":
		return PrecBitAnd
	case "==", "!=":
		return PrecEquality
	case "<", ">", "<=", ">=":
		return PrecRelational
	case "<<", ">>":
		return PrecShift
	case "+", "-":
		return PrecAdditive
	case "*", "/", "%":
		return PrecMultiplicative
	}
	return 0
}

// Prec returns the binding strength of e as it would appear in source.
func Prec(e Expr) int {
	switch v := e.(type) {
	case *ExprList:
		return PrecComma
	case *Assignment:
		return PrecAssign
	case *TernaryOp:
		return PrecTernary
	case *BinaryOp:
		return BinaryPrec(v.Op)
	case *UnaryOp:
		if v.Op == "p++" || v.Op == "p--" {
			return PrecPostfix
		}
		return PrecUnary
	case *Cast:
		return PrecUnary
	}
	return PrecPostfix
}
