package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rpn/evaluator"
)

// session evaluates expressions on behalf of the user and reports results and
// errors. It is shared by all modes of operation: arguments, batch and REPL.
type session struct {
	ev      *evaluator.Evaluator
	format  Formatter
	verbose bool
	out     io.Writer // results and traces go here
	errout  io.Writer // errors go here
}

func newSession(s settings, interactive bool, out, errout io.Writer) *session {
	return &session{
		ev:      evaluator.New(evaluator.Capacity(s.capacity)),
		format:  NewFormatter(s.locale, interactive),
		verbose: s.verbose,
		out:     out,
		errout:  errout,
	}
}

// eval evaluates an expression and reports the result or the error.
// In verbose mode the evaluation steps are reported first. label is put in
// front of the report, if not empty.
func (s *session) eval(label, expr string) error {
	var rec *evaluator.Recorder
	var obs evaluator.Observer
	if s.verbose {
		rec = evaluator.NewRecorder()
		obs = rec
	}
	r, err := s.ev.Evaluate(expr, obs)
	tracer().Debugf("%q ⟹ %g, %v", expr, r, err)
	if rec != nil && rec.Len() > 0 {
		s.format.Format(rec.Steps(), s.out)
	}
	if err != nil {
		if label != "" {
			io.WriteString(s.errout, label)
		}
		s.format.Format(err, s.errout)
		return err
	}
	if label != "" {
		io.WriteString(s.out, label)
	}
	s.format.Format(r, s.out)
	return nil
}

// evalArgs concatenates command line arguments to a single expression and
// evaluates it.
func (s *session) evalArgs(args []string) error {
	return s.eval("", strings.Join(args, " "))
}

// runBatch evaluates every line of r as an expression. Empty lines and lines
// starting with '#' are skipped. Results are labelled with line numbers.
// runBatch returns the number of failed expressions. It stops early if ctx is
// cancelled or r fails.
func (s *session) runBatch(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	failed, lineno := 0, 0
	for scanner.Scan() {
		lineno++
		select {
		case <-ctx.Done():
			return failed, ctx.Err()
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.eval(fmt.Sprintf("%d: ", lineno), line); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("reading expressions: %w", err)
	}
	return failed, nil
}
