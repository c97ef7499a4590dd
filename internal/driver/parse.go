package driver

import (
	"fmt"

	"fortio.org/safecast"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/lexer"
	"cstyle/internal/parser"
	"cstyle/internal/source"
	"cstyle/internal/trivia"
)

// ParseResult holds the syntax tree of the clean text of one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *ast.File
	Trivia  trivia.Result
	Bag     *diag.Bag
}

// Parse loads path, strips its trivia and parses the clean text.
func Parse(path string, maxDiagnostics int, enc source.Encoding) (*ParseResult, error) {
	ex, err := ExtractFile(path, false, enc)
	if err != nil {
		return nil, err
	}
	fs := ex.FileSet
	file := fs.Get(fs.AddVirtual(path, []byte(ex.Result.Clean)))

	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: maxErrors})

	return &ParseResult{
		FileSet: fs,
		File:    res.File,
		Trivia:  ex.Result,
		Bag:     bag,
	}, nil
}

// ExtractResult is the trivia split of one file on disk.
type ExtractResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  trivia.Result
}

// ExtractFile loads path in enc and separates its comments and directives.
func ExtractFile(path string, literalAware bool, enc source.Encoding) (*ExtractResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path, enc)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	res, err := trivia.Extract(string(file.Content), trivia.ExtractOptions{LiteralAware: literalAware})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ExtractResult{FileSet: fs, File: file, Result: res}, nil
}
