package evaluator

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/corelang"
)

// StepKind tells pushes and operator applications apart.
type StepKind int8

// Kinds of evaluation steps.
const (
	PushStep StepKind = iota
	ApplyStep
)

// Step is an event of an evaluation, reported to observers.
//
// For pushes, Value is the value pushed. For operator applications, Left Op Right
// has been calculated and Value holds the result. Stack is a snapshot of the
// operand stack after the step, bottom first.
type Step struct {
	Kind        StepKind
	Op          rpn.Operator
	Left, Right float64
	Value       float64
	Stack       []float64
}

func (s Step) String() string {
	if s.Kind == ApplyStep {
		return fmt.Sprintf("%g %s %g = %g", s.Left, s.Op, s.Right, s.Value)
	}
	return fmt.Sprintf("push %g", s.Value)
}

// StackString returns the stack snapshot of a step in readable form.
func (s Step) StackString() string {
	return corelang.FormatValues(s.Stack)
}

// Observer is notified of the steps of an evaluation.
type Observer interface {
	Notify(Step)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Step)

// Notify calls f(step).
func (f ObserverFunc) Notify(step Step) {
	f(step)
}

// Recorder is an observer which records all steps of evaluations.
// The zero value is ready to use.
type Recorder struct {
	steps *arraylist.List
}

var _ Observer = &Recorder{}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{steps: arraylist.New()}
}

// Notify records a step.
func (r *Recorder) Notify(step Step) {
	if r.steps == nil {
		r.steps = arraylist.New()
	}
	r.steps.Add(step)
}

// Len returns the number of steps recorded.
func (r *Recorder) Len() int {
	if r.steps == nil {
		return 0
	}
	return r.steps.Size()
}

// Steps returns the recorded steps in order.
func (r *Recorder) Steps() []Step {
	steps := make([]Step, 0, r.Len())
	if r.steps != nil {
		r.steps.Each(func(_ int, v interface{}) {
			steps = append(steps, v.(Step))
		})
	}
	return steps
}

// Reset drops all recorded steps.
func (r *Recorder) Reset() {
	if r.steps != nil {
		r.steps.Clear()
	}
}
