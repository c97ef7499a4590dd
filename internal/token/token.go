package token

import (
	"cstyle/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAuto && t.Kind <= KwBool
}

// IsTypeKeyword reports whether the token starts a builtin type specifier.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble, KwSigned, KwUnsigned,
		KwBool, KwStruct, KwUnion, KwEnum:
		return true
	default:
		return false
	}
}

// IsQualifier reports whether the token is a type qualifier.
func (t Token) IsQualifier() bool {
	switch t.Kind {
	case KwConst, KwVolatile, KwRestrict:
		return true
	default:
		return false
	}
}

// IsStorageClass reports whether the token is a storage-class specifier.
func (t Token) IsStorageClass() bool {
	switch t.Kind {
	case KwTypedef, KwExtern, KwStatic, KwAuto, KwRegister:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
