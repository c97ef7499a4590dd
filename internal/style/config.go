package style

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "cstyle.toml"

// Config is a decoded cstyle.toml.
type Config struct {
	Path      string // empty when no file was found
	Policy    Policy
	Fmt       FmtSettings
	Undecoded []string // неизвестные ключи, для предупреждений
}

// FmtSettings are the [fmt] defaults of the fmt command.
type FmtSettings struct {
	Jobs       int
	Preprocess bool
	CPP        string
	Extensions []string
	Encoding   string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Policy: Default(),
		Fmt: FmtSettings{
			CPP:        "cpp",
			Extensions: []string{".c", ".h"},
			Encoding:   "utf-8",
		},
	}
}

type fileConfig struct {
	Style styleSection `toml:"style"`
	Fmt   fmtSection   `toml:"fmt"`
}

type styleSection struct {
	Indent                 string     `toml:"indent"`
	IndentWidth            int        `toml:"indent_width"`
	FuncBraceNewLine       bool       `toml:"func_brace_newline"`
	BlockBraceNewLine      bool       `toml:"block_brace_newline"`
	SpaceAdditive          bool       `toml:"space_additive"`
	SpaceMultiplicative    bool       `toml:"space_multiplicative"`
	SpaceAssignment        bool       `toml:"space_assignment"`
	SpaceRelational        bool       `toml:"space_relational"`
	BlankLinesBetweenFuncs int        `toml:"blank_lines_between_funcs"`
	Trivia                 TriviaMode `toml:"trivia"`
	LiteralAwareComments   bool       `toml:"literal_aware_comments"`
	PadDoWhileCond         bool       `toml:"pad_do_while_cond"`
}

type fmtSection struct {
	Jobs       int      `toml:"jobs"`
	Preprocess bool     `toml:"preprocess"`
	CPP        string   `toml:"cpp"`
	Extensions []string `toml:"extensions"`
	Encoding   string   `toml:"encoding"`
}

func toFile(cfg Config) fileConfig {
	p := cfg.Policy
	indent, width := "tab", 4
	if p.IndentUnit != "\t" {
		indent, width = "space", len(p.IndentUnit)
	}
	return fileConfig{
		Style: styleSection{
			Indent:                 indent,
			IndentWidth:            width,
			FuncBraceNewLine:       p.FuncBraceNewLine,
			BlockBraceNewLine:      p.BlockBraceNewLine,
			SpaceAdditive:          p.SpaceAdditive,
			SpaceMultiplicative:    p.SpaceMultiplicative,
			SpaceAssignment:        p.SpaceAssignment,
			SpaceRelational:        p.SpaceRelational,
			BlankLinesBetweenFuncs: p.BlankLinesBetweenFuncs,
			Trivia:                 p.Trivia,
			LiteralAwareComments:   p.LiteralAwareComments,
			PadDoWhileCond:         p.PadDoWhileCond,
		},
		Fmt: fmtSection(cfg.Fmt),
	}
}

func indentUnit(kind string, width int) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "tab", "tabs":
		return "\t", nil
	case "space", "spaces":
		if width < 1 || width > 16 {
			return "", fmt.Errorf("indent_width must be in [1, 16], got %d", width)
		}
		return strings.Repeat(" ", width), nil
	default:
		return "", fmt.Errorf("indent must be \"tab\" or \"space\", got %q", kind)
	}
}

// Load decodes path over the defaults. Keys missing from the file keep their
// default values; unknown keys are listed in Config.Undecoded.
func Load(path string) (Config, error) {
	raw := toFile(DefaultConfig())
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	unit, err := indentUnit(raw.Style.Indent, raw.Style.IndentWidth)
	if err != nil {
		return Config{}, fmt.Errorf("%s: [style]: %w", path, err)
	}
	s := raw.Style
	cfg := Config{
		Path: path,
		Policy: Policy{
			IndentUnit:             unit,
			FuncBraceNewLine:       s.FuncBraceNewLine,
			BlockBraceNewLine:      s.BlockBraceNewLine,
			SpaceAdditive:          s.SpaceAdditive,
			SpaceMultiplicative:    s.SpaceMultiplicative,
			SpaceAssignment:        s.SpaceAssignment,
			SpaceRelational:        s.SpaceRelational,
			BlankLinesBetweenFuncs: s.BlankLinesBetweenFuncs,
			Trivia:                 s.Trivia,
			LiteralAwareComments:   s.LiteralAwareComments,
			PadDoWhileCond:         s.PadDoWhileCond,
		},
		Fmt: FmtSettings(raw.Fmt),
	}
	if err := cfg.Policy.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: [style]: %w", path, err)
	}
	if cfg.Fmt.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [fmt].jobs must not be negative", path)
	}
	for _, key := range meta.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return cfg, nil
}

// Find looks for cstyle.toml in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover returns the configuration for startDir: the nearest cstyle.toml,
// or the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Encode writes cfg in cstyle.toml form.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(toFile(cfg))
}
