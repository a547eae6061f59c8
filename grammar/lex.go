package grammar

import (
	"errors"
	"strconv"

	"github.com/npillmayer/rpn"
)

// Lexer is a tokenizer for RPN expressions. It is a forward-only cursor over
// the input string and is not restartable. Create one per expression.
//
// The lexer never modifies its input. After an invalid token has been
// encountered, the lexer refuses to go on: every further call to NextToken
// returns the same invalid token.
type Lexer struct {
	input  string
	pos    int   // cursor, as byte index
	failed bool  // true after an invalid token
	last   Token // the invalid token, if failed
}

// NewLexer creates a lexer for an expression.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Pos returns the current cursor position as a byte index into the input.
func (l *Lexer) Pos() int {
	return l.pos
}

// NextToken scans the next token and advances the cursor past it.
// At the end of input, a token of type EOF is returned.
func (l *Lexer) NextToken() Token {
	if l.failed {
		return l.last
	}
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Span: Span{l.pos, l.pos}}
	}
	start := l.pos
	if c := l.input[start]; rpn.IsOperator(c) && l.delimitedAt(start+1) {
		l.pos++
		tracer().Debugf("RPN lexer accepting operator %c at %d", c, start)
		return Token{
			Type:   Operator,
			Op:     rpn.Operator(c),
			Lexeme: l.input[start:l.pos],
			Span:   Span{start, l.pos},
		}
	}
	end := scanNumeral(l.input, start)
	if end == start {
		return l.fail(start)
	}
	lexeme := l.input[start:end]
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			tracer().Errorf("RPN lexer cannot convert numeral %q: %v", lexeme, err)
			return l.fail(start)
		}
		// f is ±Inf
		tracer().Debugf("numeral %q out of range", lexeme)
	}
	l.pos = end
	tracer().Debugf("RPN lexer accepting number %q at %d", lexeme, start)
	return Token{
		Type:   Number,
		Value:  f,
		Lexeme: lexeme,
		Span:   Span{start, end},
	}
}

// fail puts the lexer into its terminal error state. The lexeme of the invalid
// token extends up to the next whitespace character.
func (l *Lexer) fail(start int) Token {
	end := start
	for end < len(l.input) && !isSpace(l.input[end]) {
		end++
	}
	l.failed = true
	l.last = Token{
		Type:   Invalid,
		Lexeme: l.input[start:end],
		Span:   Span{start, end},
	}
	tracer().Debugf("RPN lexer: invalid token %q at %d", l.last.Lexeme, start)
	return l.last
}

func (l *Lexer) delimitedAt(i int) bool {
	return i >= len(l.input) || isSpace(l.input[i])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// --- Numerals --------------------------------------------------------------

// States of the DFA recognizing decimal numerals:
//
//    [+-]? ( digits ( '.' digits? )? | '.' digits ) ( [eE] [+-]? digits )?
//
type scstate int

const (
	state_start   scstate = iota
	state_sign            // seen a sign
	state_int             // in integer digits
	state_dot             // seen '.' without leading digits
	state_frac            // in fraction, may be empty after integer digits
	state_exp             // seen 'e' or 'E'
	state_expsign         // seen sign of exponent
	state_expdig          // in exponent digits
	state_err             // no transition; must be last
)

func isAccept(s scstate) bool {
	return s == state_int || s == state_frac || s == state_expdig
}

func nextState(s scstate, c byte) scstate {
	switch s {
	case state_start:
		if c == '+' || c == '-' {
			return state_sign
		}
		fallthrough
	case state_sign:
		if isDigit(c) {
			return state_int
		}
		if c == '.' {
			return state_dot
		}
	case state_int:
		if isDigit(c) {
			return state_int
		}
		if c == '.' {
			return state_frac
		}
		if c == 'e' || c == 'E' {
			return state_exp
		}
	case state_dot:
		if isDigit(c) {
			return state_frac
		}
	case state_frac:
		if isDigit(c) {
			return state_frac
		}
		if c == 'e' || c == 'E' {
			return state_exp
		}
	case state_exp:
		if c == '+' || c == '-' {
			return state_expsign
		}
		fallthrough
	case state_expsign:
		if isDigit(c) {
			return state_expdig
		}
	case state_expdig:
		if isDigit(c) {
			return state_expdig
		}
	}
	return state_err
}

// scanNumeral runs the numeral DFA on input, starting at byte position start.
// It returns the end position of the longest numeral found, or start if there
// is none. The DFA backtracks to its last accepting state, thus an incomplete
// exponent ("1e+") is not part of the numeral.
func scanNumeral(input string, start int) int {
	s, end := state_start, start
	for i := start; i < len(input); i++ {
		if s = nextState(s, input[i]); s == state_err {
			break
		}
		if isAccept(s) {
			end = i + 1
		}
	}
	return end
}
