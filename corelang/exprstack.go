package corelang

import (
	"strconv"
	"strings"

	"github.com/npillmayer/rpn"
)

// DefaultCapacity is the number of values a stack will hold if not told otherwise.
const DefaultCapacity = 100

// Stack is a bounded LIFO stack of float values.
//
// Push, Pop and Peek are O(1) and do not allocate. Stacks are not safe for
// concurrent use; every evaluation should create its own.
type Stack struct {
	values []float64 // len(values) is the stack depth
}

// NewStack creates an empty stack with room for capacity values.
// If capacity is not positive, DefaultCapacity is used.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		values: make([]float64, 0, capacity),
	}
}

// Push puts a value on top of the stack. It fails with rpn.ErrStackOverflow if
// the stack is already filled up to its capacity.
func (st *Stack) Push(v float64) error {
	if len(st.values) == cap(st.values) {
		tracer().Debugf("stack overflow, capacity is %d", cap(st.values))
		return rpn.ErrStackOverflow
	}
	st.values = append(st.values, v)
	return nil
}

// Pop removes the top value from the stack and returns it. It fails with
// rpn.ErrStackUnderflow for an empty stack.
func (st *Stack) Pop() (float64, error) {
	n := len(st.values)
	if n == 0 {
		return 0, rpn.ErrStackUnderflow
	}
	v := st.values[n-1]
	st.values = st.values[:n-1]
	return v, nil
}

// Peek returns the top value without removing it. It fails with
// rpn.ErrEmptyStack for an empty stack.
func (st *Stack) Peek() (float64, error) {
	n := len(st.values)
	if n == 0 {
		return 0, rpn.ErrEmptyStack
	}
	return st.values[n-1], nil
}

// Len returns the number of values on the stack.
func (st *Stack) Len() int {
	return len(st.values)
}

// Cap returns the capacity of the stack.
func (st *Stack) Cap() int {
	return cap(st.values)
}

// IsEmpty is a predicate: is the stack empty?
func (st *Stack) IsEmpty() bool {
	return len(st.values) == 0
}

// Snapshot returns a copy of the stack's values, bottom first.
func (st *Stack) Snapshot() []float64 {
	snap := make([]float64, len(st.values))
	copy(snap, st.values)
	return snap
}

// String returns the stack's values, bottom first, e.g. "[3 4.5]".
func (st *Stack) String() string {
	return FormatValues(st.values)
}

// FormatValues formats a list of values the way stacks are displayed.
func FormatValues(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
