package rpn

import "fmt"

// Operator is one of the binary arithmetic operators of the RPN language.
// The zero value is not a valid operator.
type Operator byte

// The operators we know about.
const (
	Plus  Operator = '+'
	Minus Operator = '-'
	Times Operator = '*'
	Div   Operator = '/'
	Power Operator = '^'
)

// IsOperator is a predicate: does c denote one of the operators?
func IsOperator(c byte) bool {
	switch Operator(c) {
	case Plus, Minus, Times, Div, Power:
		return true
	}
	return false
}

// Valid is a predicate: is op a known operator?
func (op Operator) Valid() bool {
	return IsOperator(byte(op))
}

func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("<illegal operator %#x>", byte(op))
	}
	return string(rune(op))
}

// Opname returns a readable name for an operator, e.g. "addition" for '+'.
func (op Operator) Opname() string {
	switch op {
	case Plus:
		return "addition"
	case Minus:
		return "subtraction"
	case Times:
		return "multiplication"
	case Div:
		return "division"
	case Power:
		return "exponentiation"
	}
	return op.String()
}
