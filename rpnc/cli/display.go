package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/rpn/evaluator"
	"github.com/npillmayer/rpn/rpnc/ui/termui"
	"golang.org/x/text/message"
)

// Formatter presents results, evaluation traces and errors to the user.
type Formatter struct {
	termui.DefaultFormatter
	printer *message.Printer
	prefix  string // printed in front of results
	colored bool   // use terminal colors
}

// NewFormatter creates a formatter for a locale. Interactive formatters mark
// results with a leading arrow and use colors.
func NewFormatter(locale string, interactive bool) Formatter {
	f := Formatter{printer: message.NewPrinter(resolveTag(locale))}
	if interactive {
		f.prefix = "▶ "
		f.colored = true
	}
	return f
}

// Format writes an item to w. It knows about evaluation results, evaluation
// steps and errors and delegates everything else to the default formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format item of type %T", item)
	switch t := item.(type) {
	case float64:
		_, err := fmt.Fprintf(w, "%s%s\n", f.prefix, FormatResult(t))
		return err == nil, err
	case []evaluator.Step:
		tw := f.traceTable(t)
		_, err := fmt.Fprintln(w, tw.Render())
		return err == nil, err
	case error:
		msg := localizedError(f.printer, t)
		if f.colored {
			msg = prtxt.FgRed.Sprint(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err == nil, err
	}
	return f.DefaultFormatter.Format(item, w)
}

// FormatResult formats a number with up to 6 significant digits, using the
// shortest representation, e.g. "35", "0.333333" or "1.23457e+06".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// traceTable renders the steps of an evaluation as a table.
func (f Formatter) traceTable(steps []evaluator.Step) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#",
		f.printer.Sprintf(msgColumnOperation),
		f.printer.Sprintf(msgColumnStack),
	})
	for i, step := range steps {
		tw.AppendRow(table.Row{i + 1, step.String(), step.StackString()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// examplesTable evaluates the examples and renders them as a table.
func (f Formatter) examplesTable(ev *evaluator.Evaluator, examples []example) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{
		f.printer.Sprintf(msgColumnInfix),
		f.printer.Sprintf(msgColumnRPN),
		f.printer.Sprintf(msgColumnResult),
	})
	for _, x := range examples {
		var result string
		if r, err := ev.Evaluate(x.rpn, nil); err != nil {
			result = localizedError(f.printer, err)
		} else {
			result = FormatResult(r)
		}
		tw.AppendRow(table.Row{x.infix, x.rpn, result})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
