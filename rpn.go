/*
Package rpn evaluates arithmetic expressions written in Reverse Polish Notation.

An expression is a sequence of numeric operands and binary operators, separated
by whitespace. Operators follow their operands; there is no precedence and there
are no parentheses:

    3 4 + 5 *     ⟹  35

Package rpn holds the vocabulary shared by the sub-packages: operators, the
error taxonomy and some application-global settings for the command line
front-end. Tokenizing is done in package grammar, the operand stack and the
arithmetic live in package corelang, and package evaluator drives the stack
machine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package rpn

import (
	"context"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn'.
func tracer() tracing.Trace {
	return tracing.Select("rpn")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application with errcode.
func Exit(errcode int) {
	tracer().Debugf("exit with code %d", errcode)
	os.Exit(errcode)
}
