package driver

import (
	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

// TokenizeResult holds the token stream of the clean text of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path, strips its trivia and lexes the clean text.
func Tokenize(path string, maxDiagnostics int, enc source.Encoding) (*TokenizeResult, error) {
	ex, err := ExtractFile(path, false, enc)
	if err != nil {
		return nil, err
	}
	fs := ex.FileSet
	file := fs.Get(fs.AddVirtual(path, []byte(ex.Result.Clean)))

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	// Токенизация: собираем все токены до EOF
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
