// Command rpnc is a calculator for expressions in Reverse Polish Notation.
//
//     rpnc 3 4 + 5 '*'            evaluate the arguments as one expression
//     rpnc -v -- -5 3 -           show evaluation steps
//     rpnc -f expressions.txt     evaluate one expression per line
//     rpnc                        interactive mode
//     rpnc examples               list some examples
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/rpnc/cli"
)

func main() {
	var stop context.CancelFunc
	rpn.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
