package corelang

import (
	"fmt"
	"math"

	"github.com/npillmayer/rpn"
)

// Apply calculates a op b. The only error condition is a division by zero,
// flagged as rpn.ErrDivisionByZero. Division checks for an exact zero, there is
// no epsilon.
//
// Calling Apply with an operator other than + - * / ^ is a programming error and
// will panic.
func Apply(op rpn.Operator, a, b float64) (float64, error) {
	switch op {
	case rpn.Plus:
		return a + b, nil
	case rpn.Minus:
		return a - b, nil
	case rpn.Times:
		return a * b, nil
	case rpn.Div:
		if b == 0 {
			tracer().Debugf("division by zero: %g / %g", a, b)
			return 0, rpn.ErrDivisionByZero
		}
		return a / b, nil
	case rpn.Power:
		return math.Pow(a, b), nil
	}
	panic(fmt.Sprintf("corelang.Apply called with illegal operator %#x", byte(op)))
}
