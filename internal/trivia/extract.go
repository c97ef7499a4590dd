package trivia

import (
	"strings"

	"cstyle/internal/source"
)

// ExtractOptions tunes comment detection.
type ExtractOptions struct {
	// LiteralAware skips "//" and "/*" inside string and character literals.
	// Off by default: markers are found textually, anywhere on the line, and a
	// "/*" after code opens a multi-line comment only if some later line
	// holds a "*/".
	LiteralAware bool
}

// Result is the output of Extract.
type Result struct {
	Clean    string  `json:"clean"`
	Comments Records `json:"comments"`
	Macros   Records `json:"macros"`
}

type openBlock struct {
	start    int
	parts    []string
	trailing bool
}

// Extract strips comments and preprocessor directives from raw. Removed lines
// become empty lines in Result.Clean; a comment after code keeps the code.
// Block comments are recorded once, at the line of the opener, with each
// line trimmed and joined by '\n'.
func Extract(raw string, opts ExtractOptions) (Result, error) {
	lines := source.SplitLines(raw)
	clean := make([]string, len(lines))
	var res Result
	var block *openBlock
	var macro *Record // директива с продолжением через '\'

	lastClose := -1
	for i, line := range lines {
		if strings.Contains(line, "*/") {
			lastClose = i
		}
	}

	for i, line := range lines {
		if macro != nil {
			macro.Text += "\n" + strings.TrimSpace(line)
			if !continuesLine(line) {
				res.Macros = append(res.Macros, *macro)
				macro = nil
			}
			continue
		}

		rest := line
		if block != nil {
			end := strings.Index(line, "*/")
			if end < 0 {
				block.parts = append(block.parts, strings.TrimSpace(line))
				continue
			}
			block.parts = append(block.parts, strings.TrimSpace(line[:end+2]))
			res.Comments = append(res.Comments, Record{
				Line:     block.start,
				Text:     strings.Join(block.parts, "\n"),
				Trailing: block.trailing,
			})
			block = nil
			rest = line[end+2:]
			if strings.TrimSpace(rest) == "" {
				continue
			}
		} else if isDirective(line) {
			rec := Record{Line: i, Text: strings.TrimSpace(line)}
			if continuesLine(line) {
				macro = &rec
			} else {
				res.Macros = append(res.Macros, rec)
			}
			continue
		}

		clean[i], block = splitComments(i, rest, opts, i < lastClose, &res.Comments)
	}

	if block != nil {
		return Result{}, &ExtractionError{Line: block.start}
	}
	if macro != nil {
		res.Macros = append(res.Macros, *macro)
	}
	res.Clean = strings.Join(clean, "\n")
	return res, nil
}

// splitComments removes every comment from one line and returns the code that
// remains. A block comment left open is returned as openBlock; canSpan tells
// whether a "*/" follows on a later line.
func splitComments(line int, text string, opts ExtractOptions, canSpan bool, out *Records) (string, *openBlock) {
	k, isBlock := findComment(text, opts.LiteralAware)
	if k < 0 {
		return text, nil
	}

	code := text[:k]
	for {
		hasCode := strings.TrimSpace(code) != ""
		if !isBlock {
			*out = append(*out, Record{Line: line, Text: strings.TrimSpace(text[k:]), Trailing: hasCode})
			break
		}
		end := strings.Index(text[k+2:], "*/")
		if end < 0 && hasCode && !canSpan && !opts.LiteralAware {
			// незакрытый "/*" после кода считаем кодом, например "/*" в строке
			text = text[k+2:]
			next, nextBlock := findComment(text, opts.LiteralAware)
			if next < 0 {
				code += "/*" + text
				break
			}
			code += "/*" + text[:next]
			k, isBlock = next, nextBlock
			continue
		}
		if end < 0 {
			return strings.TrimRight(code, " \t"), &openBlock{
				start:    line,
				parts:    []string{strings.TrimSpace(text[k:])},
				trailing: hasCode,
			}
		}
		end += k + 4
		*out = append(*out, Record{Line: line, Text: text[k:end], Trailing: hasCode})
		text = text[end:]
		if k, isBlock = findComment(text, opts.LiteralAware); k < 0 {
			code = joinCode(code, text)
			break
		}
		code = joinCode(code, text[:k])
	}
	return strings.TrimRight(code, " \t"), nil
}

// joinCode склеивает куски кода вокруг вырезанного комментария через пробел,
// чтобы "a/**/b" не превратилось в "ab".
func joinCode(code, piece string) string {
	if strings.TrimSpace(piece) == "" {
		return code
	}
	if strings.TrimSpace(code) == "" {
		return code + strings.TrimLeft(piece, " \t")
	}
	return strings.TrimRight(code, " \t") + " " + strings.TrimLeft(piece, " \t")
}

// findComment returns the offset of the first "//" or "/*" and whether it is a block opener.
func findComment(text string, literalAware bool) (int, bool) {
	var quote byte
	for j := 0; j+1 < len(text); j++ {
		c := text[j]
		if literalAware {
			if quote != 0 {
				switch c {
				case '\\':
					j++
				case quote:
					quote = 0
				}
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				continue
			}
		}
		if c == '/' {
			switch text[j+1] {
			case '/':
				return j, false
			case '*':
				return j, true
			}
		}
	}
	return -1, false
}

func isDirective(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

func continuesLine(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t"), "\\")
}
