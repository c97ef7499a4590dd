package format

import (
	"errors"
	"fmt"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/parser"
	"cstyle/internal/source"
	"cstyle/internal/style"
	"cstyle/internal/trivia"
)

// ErrRoundTrip marks output that does not parse back to the same tree.
var ErrRoundTrip = errors.New("format: round-trip mismatch")

// CheckRoundTrip renders file without trivia, parses the result again and
// compares both trees ignoring spans.
func CheckRoundTrip(file *ast.File, policy style.Policy, maxDiag int) error {
	policy.Trivia = style.TriviaPositional
	out, err := Render(file, policy)
	if err != nil {
		return err
	}
	return compareReparsed(file, out, maxDiag)
}

// VerifyText checks the final output of a file: text with its comments and
// directives stripped must parse back to file.
func VerifyText(file *ast.File, text string, policy style.Policy, maxDiag int) error {
	res, err := trivia.Extract(text, trivia.ExtractOptions{LiteralAware: policy.LiteralAwareComments})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}
	return compareReparsed(file, res.Clean, maxDiag)
}

func compareReparsed(file *ast.File, text string, maxDiag int) error {
	path := "<formatted>"
	if file.Source != nil {
		path = file.Source.Path
	}
	reparsed, bag := parseText(path, text, maxDiag)
	if bag.HasErrors() {
		first, _ := bag.FirstError()
		return fmt.Errorf("%w: reparse failed: %s", ErrRoundTrip, first.Message)
	}
	if !ast.Equal(file, reparsed) {
		return fmt.Errorf("%w: tree changed after formatting", ErrRoundTrip)
	}
	return nil
}

func parseText(path, text string, maxDiag int) (*ast.File, *diag.Bag) {
	if maxDiag <= 0 {
		maxDiag = 100
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(text))
	bag := diag.NewBag(maxDiag)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: uint(bag.Cap())})
	return res.File, bag
}
