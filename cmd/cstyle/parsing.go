package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cstyle/internal/ast"
	"cstyle/internal/diag"
	"cstyle/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.c>",
	Short: "Parse a C source file and print its syntax tree",
	Long:  `Parse strips comments and directives from a C source file, parses the rest and dumps the tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("encoding", "utf-8", "source encoding (utf-8|latin1|windows-1252)")
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	enc, err := encodingFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiagnostics, enc)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		_ = diag.Render(os.Stderr, result.FileSet, result.Bag, diag.RenderOptions{Color: useColor()})
	}
	if err := ast.Dump(cmd.OutOrStdout(), result.File); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("parse: %s has errors", args[0])
	}
	return nil
}
