package lexer

import (
	"cstyle/internal/source"
	"cstyle/internal/token"
)

// Lexer turns clean C text into tokens. Whitespace and comments are skipped;
// stray preprocessor lines (which the extractor normally removes) are skipped too.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	bol    bool         // at beginning of a line, ignoring blanks
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		bol:    true,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch):
		if (ch == 'L' || ch == 'u' || ch == 'U') && (lx.cursor.PeekAt(1) == '"' || lx.cursor.PeekAt(1) == '\'') {
			tok = lx.scanQuoted(1)
		} else {
			tok = lx.scanIdentOrKeyword()
		}
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanQuoted(0)
	default:
		tok = lx.scanOperatorOrPunct()
	}
	lx.bol = false
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-width span at the cursor.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the source file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// All drains the lexer, returning every token including the final EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}
