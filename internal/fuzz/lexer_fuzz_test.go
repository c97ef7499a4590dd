package fuzztests

import (
	"testing"

	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/source"
	"cstyle/internal/token"
	"cstyle/internal/trivia"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.c", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		for i := 0; i <= len(input)+1; i++ {
			if lx.Next().Kind == token.EOF {
				return
			}
		}
	})
}

func FuzzExtract(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		raw := string(clampInput(input))
		for _, literalAware := range []bool{false, true} {
			res, err := trivia.Extract(raw, trivia.ExtractOptions{LiteralAware: literalAware})
			if err != nil {
				continue
			}
			lines := source.SplitLines(raw)
			if got := len(source.SplitLines(res.Clean)); got != len(lines) {
				t.Fatalf("clean text has %d lines, input has %d", got, len(lines))
			}
		}
	})
}
