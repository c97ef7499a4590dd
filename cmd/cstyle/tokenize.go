package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cstyle/internal/diag"
	"cstyle/internal/driver"
	"cstyle/internal/source"
	"cstyle/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.c>",
	Short: "Tokenize the clean text of a C source file",
	Long:  `Tokenize strips comments and directives from a C source file and prints the tokens of what remains`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("encoding", "utf-8", "source encoding (utf-8|latin1|windows-1252)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	enc, err := encodingFlag(cmd)
	if err != nil {
		return err
	}

	// Выполняем токенизацию
	result, err := driver.Tokenize(filePath, maxDiagnostics, enc)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		_ = diag.Render(os.Stderr, result.FileSet, result.Bag, diag.RenderOptions{Color: useColor()})
	}

	switch format {
	case "pretty":
		return formatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func encodingFlag(cmd *cobra.Command) (source.Encoding, error) {
	value, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return source.EncodingUTF8, fmt.Errorf("failed to get encoding flag: %w", err)
	}
	return source.ParseEncoding(value)
}

func formatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d:%-4d %-14s %q\n", start.Line, start.Col, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

func formatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	type jsonToken struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
		Line uint32 `json:"line"`
		Col  uint32 `json:"col"`
	}
	out := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, jsonToken{Kind: tok.Kind.String(), Text: tok.Text, Line: start.Line, Col: start.Col})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
