package rpn

import (
	"errors"
	"fmt"
	"strings"
)

// Errors flagged by the stack machine. They are not returned as-is by the evaluator,
// but wrapped into an EvalError, which carries the diagnostic details. Clients should
// test for them with errors.Is.
var (
	ErrStackOverflow        = errors.New("stack overflow")
	ErrStackUnderflow       = errors.New("stack underflow")
	ErrEmptyStack           = errors.New("empty stack")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrInvalidToken         = errors.New("invalid token")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrMalformedExpression  = errors.New("malformed expression")
)

// ErrorKind classifies evaluation errors.
type ErrorKind int8

// Kinds of errors, one for each of the sentinel errors. NoError and Unknown
// are for nil and foreign errors.
const (
	NoError ErrorKind = iota
	StackOverflow
	StackUnderflow
	EmptyStack
	InsufficientOperands
	InvalidToken
	DivisionByZero
	MalformedExpression
	Unknown
)

var kinds = []struct {
	kind ErrorKind
	err  error
}{
	{StackOverflow, ErrStackOverflow},
	{StackUnderflow, ErrStackUnderflow},
	{EmptyStack, ErrEmptyStack},
	{InsufficientOperands, ErrInsufficientOperands},
	{InvalidToken, ErrInvalidToken},
	{DivisionByZero, ErrDivisionByZero},
	{MalformedExpression, ErrMalformedExpression},
}

// KindOf returns the classification of an error. Errors which do not wrap one of
// the sentinel errors of this package are of kind Unknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return Unknown
}

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case Unknown:
		return "unknown error"
	}
	for _, x := range kinds {
		if x.kind == k {
			return x.err.Error()
		}
	}
	return fmt.Sprintf("<illegal error kind: %d>", k)
}

// EvalError is the error type returned from evaluating an expression.
// Err is always one of the sentinel errors of this package; the other fields
// are set as far as they are meaningful for the kind of error:
//
//   ErrInvalidToken           Lexeme, Pos
//   ErrStackOverflow          Lexeme, Pos, Depth
//   ErrInsufficientOperands   Op, Pos, Depth
//   ErrDivisionByZero         Op, Pos
//   ErrMalformedExpression    Depth
//
// Pos is a byte offset into the expression text.
type EvalError struct {
	Err    error    // sentinel error
	Lexeme string   // offending token text
	Pos    int      // byte position of the offending token
	Op     Operator // offending operator
	Depth  int      // stack depth at the time of the error
}

// Kind returns the classification of e.
func (e *EvalError) Kind() ErrorKind {
	return KindOf(e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func (e *EvalError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	switch e.Kind() {
	case InvalidToken:
		fmt.Fprintf(&b, ": %q at position %d", e.Lexeme, e.Pos)
	case StackOverflow:
		fmt.Fprintf(&b, ": cannot push %s at position %d, stack holds %d values",
			e.Lexeme, e.Pos, e.Depth)
	case InsufficientOperands:
		fmt.Fprintf(&b, ": operator '%s' at position %d needs 2 operands, stack holds %d",
			e.Op, e.Pos, e.Depth)
	case DivisionByZero:
		fmt.Fprintf(&b, ": operator '%s' at position %d", e.Op, e.Pos)
	case MalformedExpression:
		if e.Depth == 0 {
			b.WriteString(": no value left on the stack")
		} else {
			fmt.Fprintf(&b, ": %d values left on the stack", e.Depth)
		}
	}
	return b.String()
}
