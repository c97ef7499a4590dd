package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"cstyle/internal/diag"
	"cstyle/internal/driver"
	"cstyle/internal/observ"
	"cstyle/internal/source"
	"cstyle/internal/style"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format C source files",
	Long: `Format rewrites .c and .h files (directories are walked recursively) by the
rules of the nearest cstyle.toml. "-" formats standard input to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	registerFmtFlags(fmtCmd)
}

func registerFmtFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "check if files are properly formatted")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("preprocess", false, "run the C preprocessor before formatting (implies no in-place writes)")
	cmd.Flags().String("cpp", driver.DefaultCPP, "preprocessor command for --preprocess")
	cmd.Flags().String("trivia", "", "comment placement (anchored|positional); default from config")
	cmd.Flags().Bool("verify", false, "reparse the output and keep files whose tree would change")
	cmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("encoding", "", "source encoding (utf-8|latin1|windows-1252); default from config")
}

// fmtFlags are the fmt flags merged over the config file.
type fmtFlags struct {
	check, stdout, verify, noCache, timings, quiet bool
	format                                         string
	ui                                             uiMode
	maxDiagnostics                                 int
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	opts, err := fmtOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}

	if slices.Contains(args, "-") {
		if len(args) != 1 {
			return errors.New("fmt: \"-\" cannot be combined with other paths")
		}
		res := driver.FormatStdin(cmd.Context(), "<stdin>", cmd.InOrStdin(), opts)
		renderDiagnostics(cmd.ErrOrStderr(), []driver.FormatResult{res}, flags)
		if res.Err != nil {
			// исходный текст уходит дальше без изменений
			if res.Output != nil {
				_, _ = io.WriteString(cmd.OutOrStdout(), res.Output.Text)
			}
			return fmt.Errorf("fmt: %w", res.Err)
		}
		_, err := cmd.OutOrStdout().Write(res.Formatted)
		return err
	}

	results, err := formatWithProgress(cmd.Context(), args, opts, flags.ui)
	if err != nil {
		return err
	}
	renderDiagnostics(cmd.ErrOrStderr(), results, flags)

	var hasErrors, hasChanges bool
	switch flags.format {
	case "text":
		if flags.stdout {
			hasErrors = renderFmtStdout(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
		} else {
			hasErrors, hasChanges = renderFmtText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, flags.check, flags.quiet)
		}
	case "json":
		hasErrors, hasChanges = summarize(results)
		if err := renderFmtJSON(cmd.OutOrStdout(), results, flags.check); err != nil {
			return err
		}
	}
	if flags.timings {
		printTimings(cmd.ErrOrStderr(), results)
	}

	if hasErrors {
		return errors.New("fmt: failed to format some files")
	}
	if flags.check && hasChanges {
		return errors.New("fmt: formatting changes required")
	}
	return nil
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	fl := cmd.Flags()
	if f.check, err = fl.GetBool("check"); err != nil {
		return f, err
	}
	if f.stdout, err = fl.GetBool("stdout"); err != nil {
		return f, err
	}
	if f.verify, err = fl.GetBool("verify"); err != nil {
		return f, err
	}
	if f.noCache, err = fl.GetBool("no-cache"); err != nil {
		return f, err
	}
	if f.format, err = fl.GetString("format"); err != nil {
		return f, err
	}
	uiValue, err := fl.GetString("ui")
	if err != nil {
		return f, err
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	root := cmd.Root().PersistentFlags()
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, err
	}
	if f.quiet, err = root.GetBool("quiet"); err != nil {
		return f, err
	}
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, err
	}

	if f.stdout && f.check {
		return f, errors.New("fmt: --stdout cannot be used with --check")
	}
	switch f.format {
	case "text":
	case "json":
		if f.stdout {
			return f, errors.New("fmt: --stdout is only supported with text output")
		}
	default:
		return f, fmt.Errorf("fmt: unsupported output format %q", f.format)
	}
	return f, nil
}

// fmtOptions merges flags over cfg: a flag wins only when given explicitly.
func fmtOptions(cmd *cobra.Command, cfg style.Config, f fmtFlags) (driver.FormatOptions, error) {
	fl := cmd.Flags()
	pol := cfg.Policy
	if fl.Changed("trivia") {
		value, _ := fl.GetString("trivia")
		mode, err := style.ParseTriviaMode(value)
		if err != nil {
			return driver.FormatOptions{}, err
		}
		pol.Trivia = mode
	}

	settings := cfg.Fmt
	if fl.Changed("jobs") {
		settings.Jobs, _ = fl.GetInt("jobs")
	}
	if fl.Changed("preprocess") {
		settings.Preprocess, _ = fl.GetBool("preprocess")
	}
	if fl.Changed("cpp") || settings.CPP == "" {
		settings.CPP, _ = fl.GetString("cpp")
	}
	if fl.Changed("encoding") {
		settings.Encoding, _ = fl.GetString("encoding")
	}
	enc, err := source.ParseEncoding(settings.Encoding)
	if err != nil {
		return driver.FormatOptions{}, err
	}

	opts := driver.FormatOptions{
		Pipeline: driver.PipelineOptions{
			Policy:         pol,
			MaxDiagnostics: f.maxDiagnostics,
			Verify:         f.verify,
			Timings:        f.timings,
		},
		Check:      f.check,
		Stdout:     f.stdout,
		Jobs:       settings.Jobs,
		Extensions: settings.Extensions,
		Encoding:   enc,
		Preprocess: settings.Preprocess,
		CPP:        settings.CPP,
	}
	if !f.noCache && !f.check {
		// кэш не обязателен: без каталога просто работаем медленнее
		if cache, err := driver.OpenFormatCache("cstyle"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func renderDiagnostics(w io.Writer, results []driver.FormatResult, f fmtFlags) {
	for _, res := range results {
		if res.Output == nil || res.Output.Bag.Len() == 0 {
			continue
		}
		bag := res.Output.Bag
		if f.quiet && !bag.HasErrors() {
			continue
		}
		bag.Sort()
		_ = diag.Render(w, res.Output.FileSet, bag, diag.RenderOptions{Color: useColor()})
	}
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func renderFmtStdout(out, errOut io.Writer, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fmt: %v\n", res.Err)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fmt: %v\n", res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
		} else {
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path      string            `json:"path"`
		Changed   bool              `json:"changed"`
		Cached    bool              `json:"cached,omitempty"`
		Error     string            `json:"error,omitempty"`
		CheckRun  bool              `json:"check"`
		Comments  int               `json:"comments"`
		Macros    int               `json:"macros"`
		Anomalies int               `json:"anomalies,omitempty"`
		Diags     []diag.Diagnostic `json:"diagnostics,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if o := res.Output; o != nil {
			jr.Comments, jr.Macros, jr.Anomalies = o.Comments, o.Macros, len(o.Anomalies)
			jr.Diags = o.Bag.Items()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printTimings(w io.Writer, results []driver.FormatResult) {
	total := observ.NewTimer()
	for _, res := range results {
		if res.Output != nil {
			total.Merge(res.Output.Timer)
		}
	}
	fmt.Fprint(w, total.Summary())
}

// formatWithProgress runs FormatPaths, showing the progress UI when mode allows.
func formatWithProgress(ctx context.Context, paths []string, opts driver.FormatOptions, mode uiMode) ([]driver.FormatResult, error) {
	if opts.Stdout || !shouldUseTUI(mode, isBatch(paths)) {
		return driver.FormatPaths(ctx, paths, opts)
	}
	return runFormatWithUI(ctx, "cstyle fmt", paths, opts)
}
