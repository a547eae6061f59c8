/*
Package corelang implements the operand stack and the arithmetic of the RPN
stack machine.

The stack is bounded: its capacity is fixed at creation time and its backing
storage is never re-allocated. Operators are binary; see Apply.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn.core'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.core")
}
