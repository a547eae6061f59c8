package evaluator

import (
	"github.com/npillmayer/rpn/corelang"
)

// Evaluator evaluates RPN expressions.
//
// An Evaluator holds configuration only. Every call to Evaluate gets its own
// stack and lexer, thus an Evaluator may be used by concurrent goroutines.
type Evaluator struct {
	capacity int // capacity of the operand stack
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// Capacity sets the capacity of the operand stack. Values ≤ 0 select
// corelang.DefaultCapacity.
func Capacity(n int) Option {
	return func(ev *Evaluator) {
		if n <= 0 {
			n = corelang.DefaultCapacity
		}
		ev.capacity = n
	}
}

// New creates an evaluator.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		capacity: corelang.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Capacity returns the capacity of the operand stack used for evaluations.
func (ev *Evaluator) Capacity() int {
	return ev.capacity
}

// Evaluate evaluates an RPN expression and returns its value.
// If obs is not nil, it will be notified of every evaluation step. Observing
// never influences the result.
//
// Errors are of type *rpn.EvalError.
func (ev *Evaluator) Evaluate(expr string, obs Observer) (float64, error) {
	tracer().Debugf("evaluate %q", expr)
	m := newMachine(expr, ev.capacity, obs)
	return m.run()
}

var defaultEvaluator = New()

// Evaluate evaluates an RPN expression with an operand stack of default capacity.
// See (*Evaluator).Evaluate.
func Evaluate(expr string, obs Observer) (float64, error) {
	return defaultEvaluator.Evaluate(expr, obs)
}
