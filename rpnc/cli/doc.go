// Package cli implements the rpnc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rpn.cli'
func tracer() tracing.Trace {
	return tracing.Select("rpn.cli")
}
