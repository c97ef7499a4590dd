package style

import (
	"fmt"
	"strings"
)

// MaxBlankLines caps BlankLinesBetweenFuncs.
const MaxBlankLines = 8

// Policy is the complete set of formatting rules.
type Policy struct {
	IndentUnit             string
	FuncBraceNewLine       bool
	BlockBraceNewLine      bool
	SpaceAdditive          bool
	SpaceMultiplicative    bool
	SpaceAssignment        bool
	SpaceRelational        bool
	BlankLinesBetweenFuncs int
	Trivia                 TriviaMode
	LiteralAwareComments   bool
	// PadDoWhileCond writes "while ( cond );" after a do body.
	PadDoWhileCond bool
}

// Default returns the house style: tabs, function braces on their own line,
// spaced operators and one blank line between functions.
func Default() Policy {
	return Policy{
		IndentUnit:             "\t",
		FuncBraceNewLine:       true,
		BlockBraceNewLine:      false,
		SpaceAdditive:          true,
		SpaceMultiplicative:    true,
		SpaceAssignment:        true,
		SpaceRelational:        true,
		BlankLinesBetweenFuncs: 1,
		Trivia:                 TriviaAnchored,
		PadDoWhileCond:         true,
	}
}

// Indent returns the indentation prefix for level.
func (p Policy) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(p.IndentUnit, level)
}

// SpaceAround reports whether op gets one space on each side.
// Shift, bitwise and logical operators are always spaced.
func (p Policy) SpaceAround(op string) bool {
	switch op {
	case "+", "-":
		return p.SpaceAdditive
	case "*", "/", "%":
		return p.SpaceMultiplicative
	case "<", ">", "<=", ">=", "==", "!=":
		return p.SpaceRelational
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return p.SpaceAssignment
	}
	return true
}

// Validate checks the policy for values the printer cannot honor.
func (p Policy) Validate() error {
	if p.IndentUnit == "" {
		return fmt.Errorf("indent unit must not be empty")
	}
	if strings.Trim(p.IndentUnit, " \t") != "" {
		return fmt.Errorf("indent unit must contain only spaces or tabs, got %q", p.IndentUnit)
	}
	if p.BlankLinesBetweenFuncs < 0 || p.BlankLinesBetweenFuncs > MaxBlankLines {
		return fmt.Errorf("blank lines between functions must be in [0, %d], got %d", MaxBlankLines, p.BlankLinesBetweenFuncs)
	}
	if p.Trivia != TriviaAnchored && p.Trivia != TriviaPositional {
		return fmt.Errorf("unknown trivia mode %s", p.Trivia)
	}
	return nil
}

// Fingerprint is a stable textual key of the policy, used for cache keys.
func (p Policy) Fingerprint() string {
	return fmt.Sprintf("indent=%q fbn=%t bbn=%t sa=%t sm=%t sas=%t sr=%t blank=%d trivia=%s lit=%t dowhile=%t",
		p.IndentUnit, p.FuncBraceNewLine, p.BlockBraceNewLine,
		p.SpaceAdditive, p.SpaceMultiplicative, p.SpaceAssignment, p.SpaceRelational,
		p.BlankLinesBetweenFuncs, p.Trivia, p.LiteralAwareComments, p.PadDoWhileCond)
}
