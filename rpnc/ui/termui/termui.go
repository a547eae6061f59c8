// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
package termui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'rpn.cli'.
func trace() tracing.Trace {
	return tracing.Select("rpn.cli")
}

// Formatter writes items to the terminal. It returns true if it was able to
// display the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings, maps and tables, and a type notice for
// everything else.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case map[string]interface{}:
		jsn, e := json.MarshalIndent(t, "  ", "    ")
		if e != nil {
			return false, nil
		}
		_, err = fmt.Fprintf(w, "▶ Hierarchical object: %s\n", jsn)
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = fmt.Fprintln(w, t.Render())
		}
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}
