// Package token defines lexical token kinds for the C subset understood by cstyle.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Token.Span matches Text exactly (Start..End).
//   - Comments never appear in the token stream; the lexer skips them.
//   - Preprocessor lines are removed before lexing and are not tokens.
package token
