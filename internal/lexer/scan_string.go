package lexer

import (
	"cstyle/internal/diag"
	"cstyle/internal/token"
)

// scanQuoted reads a string or character literal. prefix is the length of an
// encoding prefix (L, u, U) already known to precede the quote.
// Escapes are skipped, not validated.
func (lx *Lexer) scanQuoted(prefix uint32) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Off += prefix
	quote := lx.cursor.Bump()
	kind, code, what := token.StringLit, diag.LexUnterminatedString, "string"
	if quote == '\'' {
		kind, code, what = token.CharLit, diag.LexUnterminatedChar, "character"
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(code, sp, "newline in "+what+" literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, "unterminated "+what+" literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
