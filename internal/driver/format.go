package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cstyle/internal/source"
	"cstyle/internal/trace"
)

// DefaultExtensions are the file suffixes collected from directories.
var DefaultExtensions = []string{".c", ".h"}

// FormatOptions configures batch formatting.
type FormatOptions struct {
	Pipeline PipelineOptions
	// Check reports files that would change without writing them.
	Check bool
	// Stdout returns formatted text in FormatResult.Formatted instead of writing.
	Stdout     bool
	Jobs       int
	Extensions []string
	Encoding   source.Encoding
	// Preprocess runs CPP over each file before extraction. The result no
	// longer contains the original directives, so it is never written back.
	Preprocess bool
	CPP        string
	Cache      *FormatCache
	Progress   ProgressFunc
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	// Output is nil for cache hits and files that failed to load.
	Output *Output
}

// FormatPaths formats provided files or directories (recursively collecting files
// with opts.Extensions). Files are formatted in parallel; a failure of one file is
// reported in its FormatResult and does not stop the batch. When opts.Check is true,
// files are not modified; Changed indicates whether formatting would update the
// file contents. When opts.Stdout is true, formatted content is returned in the
// results without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Preprocess && !opts.Check && !opts.Stdout {
		return nil, errors.New("format: preprocessed output cannot be written in place (use --stdout or --check)")
	}
	if err := opts.Pipeline.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	files, err := collectSourceFiles(ctx, paths, exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	batch, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "format-paths")
	batch.WithExtra("files", fmt.Sprint(len(files)))

	for _, path := range files {
		opts.progress(ProgressEvent{Path: path, Stage: StageQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FormatResult{Path: path, Err: err}
				return err
			}
			results[i] = formatSingleFile(gctx, path, opts)
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		batch.Fail(err)
	} else {
		batch.End("")
	}
	return results, err
}

// FormatStdin formats text read from r; name is used in diagnostics.
// The result always carries the formatted text.
func FormatStdin(ctx context.Context, name string, r io.Reader, opts FormatOptions) FormatResult {
	data, err := io.ReadAll(r)
	if err != nil {
		return FormatResult{Path: name, Err: err}
	}
	fileSet := source.NewFileSet()
	id, err := fileSet.AddEncoded(name, data, opts.Encoding)
	if err != nil {
		return FormatResult{Path: name, Err: err}
	}
	opts.Stdout = true
	return formatLoaded(ctx, name, fileSet.Get(id), opts)
}

func (opts FormatOptions) progress(ev ProgressEvent) {
	if opts.Progress != nil {
		opts.Progress(ev)
	}
}

func formatSingleFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path, opts.Encoding)
	if err != nil {
		res := FormatResult{Path: path, Err: err}
		opts.progress(ProgressEvent{Path: path, Stage: StageFailed, Err: err})
		return res
	}
	return formatLoaded(ctx, path, fileSet.Get(id), opts)
}

// formatLoaded reports progress under path, the name the file was collected as.
func formatLoaded(ctx context.Context, path string, sf *source.File, opts FormatOptions) FormatResult {
	res := formatContent(ctx, path, sf, opts)
	if res.Err == nil && res.Changed && !opts.Check && !opts.Stdout {
		res.Err = writeFormatted(sf, res.Formatted)
	}
	if opts.Check {
		res.Formatted = nil
	}
	stage := StageDone
	if res.Err != nil {
		stage = StageFailed
	}
	opts.progress(ProgressEvent{Path: path, Stage: stage, Changed: res.Changed, Cached: res.Cached, Err: res.Err})
	return res
}

func formatContent(ctx context.Context, path string, sf *source.File, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	raw := string(sf.Content)

	useCache := opts.Cache != nil && !opts.Preprocess
	var key Digest
	if useCache {
		key = CacheKey(sf.Content, opts.Pipeline.Policy, opts.Pipeline.Verify)
		if hit, ok, err := opts.Cache.Get(key); err == nil && ok {
			res.Formatted = []byte(hit.Formatted)
			res.Changed = hit.Changed
			res.Cached = true
			return res
		}
	}

	if opts.Preprocess {
		pre, err := Preprocess(ctx, opts.CPP, raw)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", path, err)
			return res
		}
		raw = pre
	}

	pipe := opts.Pipeline
	pipe.Observe = func(s Stage) {
		// финальные события шлёт formatLoaded, уже с Changed/Err
		if !s.Final() {
			opts.progress(ProgressEvent{Path: path, Stage: s})
		}
	}
	out, err := FormatSource(ctx, path, raw, pipe)
	res.Output = out
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = []byte(out.Text)
	res.Changed = out.Text != string(sf.Content)

	if useCache {
		// кэш — best effort: ошибка записи не портит результат
		_ = opts.Cache.Put(key, &CachedResult{
			Path:      path,
			Formatted: out.Text,
			Changed:   res.Changed,
			Comments:  out.Comments,
			Macros:    out.Macros,
		})
	}
	return res
}

func writeFormatted(sf *source.File, text []byte) error {
	data, err := sf.Denormalize(text)
	if err != nil {
		return fmt.Errorf("%s: encode %s: %w", sf.Path, sf.Encoding, err)
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(sf.Path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(sf.Path, data, mode.Perm()); err != nil {
		return err
	}
	return nil
}

func collectSourceFiles(ctx context.Context, paths, exts []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	matches := func(path string) bool {
		return slices.Contains(exts, strings.ToLower(filepath.Ext(path)))
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if matches(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// явно названный файл форматируем при любом расширении
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
