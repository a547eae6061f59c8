package grammar

import (
	"fmt"

	"github.com/npillmayer/rpn"
)

// TokType is the category of a token.
type TokType int8

// Token categories. EOF signals the end of input and is not an error.
const (
	EOF TokType = iota
	Number
	Operator
	Invalid
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Invalid:
		return "Invalid"
	}
	return fmt.Sprintf("<illegal token type: %d>", t)
}

// Span is a range of byte positions [Start…End) within the input.
type Span struct {
	Start, End int
}

// Len returns the length of a span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Token is a lexical unit of an expression.
//
// Value is set for tokens of type Number, Op for tokens of type Operator. Lexeme
// is the matched text, for invalid tokens it is the run of non-whitespace
// characters the lexer could not make sense of.
type Token struct {
	Type   TokType
	Value  float64
	Op     rpn.Operator
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<EOF>"
	case Number:
		return fmt.Sprintf("Number(%g)", t.Value)
	case Operator:
		return fmt.Sprintf("Operator(%s)", t.Op)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}
