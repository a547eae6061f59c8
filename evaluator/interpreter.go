package evaluator

import (
	"fmt"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/corelang"
	"github.com/npillmayer/rpn/grammar"
)

// state is the state of the stack machine.
type state int8

const (
	scanning state = iota // default: fetching tokens
	applying              // applying an operator
	done                  // terminal: success
	failed                // terminal: an error occurred
)

func (s state) String() string {
	switch s {
	case scanning:
		return "scanning"
	case applying:
		return "applying"
	case done:
		return "done"
	case failed:
		return "failed"
	}
	return fmt.Sprintf("<illegal state: %d>", s)
}

// machine is the stack machine for a single evaluation.
type machine struct {
	lexer *grammar.Lexer
	stack *corelang.Stack
	obs   Observer
	state state
}

func newMachine(expr string, capacity int, obs Observer) *machine {
	return &machine{
		lexer: grammar.NewLexer(expr),
		stack: corelang.NewStack(capacity),
		obs:   obs,
	}
}

// run fetches and executes tokens until the input is exhausted or an error
// occurs. There is no recovery from errors.
func (m *machine) run() (float64, error) {
	for {
		tok := m.lexer.NextToken()
		if tok.Type == grammar.EOF {
			break
		}
		if err := m.execute(tok); err != nil {
			m.enter(failed)
			return 0, err
		}
	}
	if m.stack.Len() != 1 {
		m.enter(failed)
		return 0, &rpn.EvalError{
			Err:   rpn.ErrMalformedExpression,
			Pos:   m.lexer.Pos(),
			Depth: m.stack.Len(),
		}
	}
	m.enter(done)
	return m.stack.Peek()
}

func (m *machine) enter(s state) {
	tracer().Debugf("%s → %s", m.state, s)
	m.state = s
}

func (m *machine) execute(tok grammar.Token) error {
	switch tok.Type {
	case grammar.Number:
		return m.push(tok)
	case grammar.Operator:
		m.enter(applying)
		if err := m.apply(tok); err != nil {
			return err
		}
		m.enter(scanning)
		return nil
	case grammar.Invalid:
		return &rpn.EvalError{
			Err:    rpn.ErrInvalidToken,
			Lexeme: tok.Lexeme,
			Pos:    tok.Span.Start,
			Depth:  m.stack.Len(),
		}
	}
	panic(fmt.Sprintf("stack machine cannot execute token %v", tok))
}

func (m *machine) push(tok grammar.Token) error {
	if err := m.stack.Push(tok.Value); err != nil {
		return &rpn.EvalError{
			Err:    err,
			Lexeme: tok.Lexeme,
			Pos:    tok.Span.Start,
			Depth:  m.stack.Len(),
		}
	}
	m.notify(Step{Kind: PushStep, Value: tok.Value})
	return nil
}

// apply pops the right operand b, then the left operand a, and pushes a op b.
func (m *machine) apply(tok grammar.Token) error {
	errorAt := func(err error) error {
		return &rpn.EvalError{
			Err:   err,
			Op:    tok.Op,
			Pos:   tok.Span.Start,
			Depth: m.stack.Len(),
		}
	}
	if m.stack.Len() < 2 {
		return errorAt(rpn.ErrInsufficientOperands)
	}
	b, err := m.stack.Pop()
	if err != nil {
		return errorAt(err)
	}
	a, err := m.stack.Pop()
	if err != nil {
		return errorAt(err)
	}
	r, err := corelang.Apply(tok.Op, a, b)
	if err != nil {
		return errorAt(err)
	}
	if err = m.stack.Push(r); err != nil {
		return errorAt(err)
	}
	m.notify(Step{Kind: ApplyStep, Op: tok.Op, Left: a, Right: b, Value: r})
	return nil
}

func (m *machine) notify(step Step) {
	if m.obs == nil {
		return
	}
	step.Stack = m.stack.Snapshot()
	m.obs.Notify(step)
}
