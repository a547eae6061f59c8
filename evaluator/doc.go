/*
Package evaluator implements the stack machine which evaluates RPN expressions.

Evaluation pulls tokens from a grammar.Lexer one at a time. Numbers are pushed
onto a bounded operand stack; an operator pops its right operand, then its
left operand, and pushes the result. After the input is exhausted, exactly one
value must remain on the stack: this is the result of the evaluation.

The first error encountered terminates the evaluation. All errors are of type
*rpn.EvalError and wrap one of the sentinel errors of package rpn.

Clients interested in the individual steps of an evaluation may hand an Observer
to Evaluate. Observers are notified of every push and every operator application,
together with a snapshot of the stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn.eval'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.eval")
}
