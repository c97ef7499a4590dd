package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005

	// Парсерные
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynUnclosedParen      Code = 2003
	SynUnclosedBrace      Code = 2004
	SynUnclosedBracket    Code = 2005
	SynExpectIdentifier   Code = 2006
	SynExpectExpression   Code = 2007
	SynExpectType         Code = 2008
	SynExpectColon        Code = 2009
	SynUnexpectedTopLevel Code = 2010
	SynTooDeep            Code = 2011

	// Trivia
	TrvUnterminatedBlockComment Code = 3001
	TrvReinjectionBounds        Code = 3002

	// Форматирование
	FmtUnsupportedNode Code = 4001
	FmtTooDeep         Code = 4002
	FmtRoundTrip       Code = 4003

	// IO
	IOLoadFileError   Code = 5001
	IOPreprocessError Code = 5002
	IOWriteFileError  Code = 5003

	// Наблюдаемость
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expected ';'",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectType:               "Expected type",
	SynExpectColon:              "Expected ':'",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynTooDeep:                  "Nesting too deep",
	TrvUnterminatedBlockComment: "Unterminated block comment",
	TrvReinjectionBounds:        "Trivia position outside formatted output",
	FmtUnsupportedNode:          "Unsupported syntax node",
	FmtTooDeep:                  "Tree too deep to format",
	FmtRoundTrip:                "Formatted output does not reparse to the same tree",
	IOLoadFileError:             "Failed to load file",
	IOPreprocessError:           "Preprocessor failed",
	IOWriteFileError:            "Failed to write file",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRV%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
