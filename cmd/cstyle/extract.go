package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cstyle/internal/driver"
	"cstyle/internal/source"
	"cstyle/internal/trivia"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <file.c>",
	Short: "Show the clean text and the comments and directives stripped from it",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	extractCmd.Flags().Bool("literal-aware", false, "ignore comment markers inside string and char literals")
	extractCmd.Flags().String("encoding", "utf-8", "source encoding (utf-8|latin1|windows-1252)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	literalAware, err := cmd.Flags().GetBool("literal-aware")
	if err != nil {
		return fmt.Errorf("failed to get literal-aware flag: %w", err)
	}
	encValue, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("failed to get encoding flag: %w", err)
	}
	enc, err := source.ParseEncoding(encValue)
	if err != nil {
		return err
	}

	res, err := driver.ExtractFile(args[0], literalAware, enc)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	switch format {
	case "pretty":
		return renderExtractPretty(cmd.OutOrStdout(), res.Result)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderExtractPretty(w io.Writer, res trivia.Result) error {
	section := func(title string, recs trivia.Records) {
		fmt.Fprintf(w, "== %s (%d)\n", title, len(recs))
		for _, r := range recs {
			mark := ""
			if r.Trailing {
				mark = " trailing"
			}
			fmt.Fprintf(w, "%4d%s: %q\n", r.Line+1, mark, r.Text)
		}
	}
	fmt.Fprintln(w, "== clean")
	for i, line := range source.SplitLines(res.Clean) {
		fmt.Fprintf(w, "%4d | %s\n", i+1, line)
	}
	section("comments", res.Comments)
	section("macros", res.Macros)
	return nil
}
