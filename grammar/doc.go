/*
Package grammar implements the tokenizer for RPN expressions.

The lexer works directly on the expression text, which it never modifies or
copies. Tokens are handed out one at a time; the lexemes of tokens are
sub-strings of the input.

Tokens are separated by whitespace. An operator is one of

    +  -  *  /  ^

immediately followed by whitespace or the end of input. Everything else has to
start with a decimal numeral (optional sign, digits with an optional fraction,
optional exponent). The lexer consumes the longest numeral it finds, thus "-5"
is a single number token, whereas "- 5" is an operator followed by a number.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.grammar")
}
