package evaluator_test

import (
	"errors"
	"math"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/evaluator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Expr   string  `yaml:"expr"`
	Result float64 `yaml:"result"`
	Error  string  `yaml:"error"`
}

func loadFixtures(t testing.TB) []fixture {
	data, err := os.ReadFile("testdata/expressions.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var fixtures []fixture
	if err = yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("cannot read fixtures: %v", err)
	}
	return fixtures
}

func TestFixtures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	fixtures := loadFixtures(t)
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found")
	}
	for i, f := range fixtures {
		r, err := evaluator.Evaluate(f.Expr, nil)
		if f.Error != "" {
			if kind := rpn.KindOf(err); kind.String() != f.Error {
				t.Errorf("test %d: expected %q to fail with %q, have %v", i, f.Expr, f.Error, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, f.Expr, err)
		} else if r != f.Result {
			t.Errorf("test %d: expected %q = %g, have %g", i, f.Expr, f.Result, r)
		}
	}
}

func TestAgainstInfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	for i, x := range []struct {
		expr  string
		infix float64
	}{
		{"3 4 + 5 *", (3 + 4) * 5},
		{"5 1 2 + 4 * + 3 -", 5 + ((1+2)*4) - 3},
		{"15 7 1 1 + - / 3 * 2 1 1 + + -", 15.0/(7-(1+1))*3 - (2 + (1 + 1))},
		{"1 2 3 4 5 * * * *", 1 * 2 * 3 * 4 * 5},
		{"2.5 4 * 3 /", 2.5 * 4 / 3},
		{"1 3 /", 1.0 / 3},
		{"2 0.5 ^ 2 ^", math.Pow(math.Pow(2, 0.5), 2)},
		{"100 7 - 3 - 2 -", 100 - 7 - 3 - 2},
		{"100 7 3 2 - - -", 100 - (7 - (3 - 2))},
	} {
		r, err := evaluator.Evaluate(x.expr, nil)
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, x.expr, err)
		} else if r != x.infix {
			t.Errorf("test %d: expected %q = %g, have %g", i, x.expr, x.infix, r)
		}
	}
}

func TestErrorDetails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	_, err := evaluator.Evaluate("3 4 @", nil)
	var everr *rpn.EvalError
	if !errors.As(err, &everr) {
		t.Fatalf("expected error of type *rpn.EvalError, have %T", err)
	}
	if everr.Lexeme != "@" || everr.Pos != 4 {
		t.Errorf("expected invalid token '@' at position 4, have %q at %d", everr.Lexeme, everr.Pos)
	}
	//
	_, err = evaluator.Evaluate("1 +", nil)
	if !errors.As(err, &everr) || !errors.Is(err, rpn.ErrInsufficientOperands) {
		t.Fatalf("expected insufficient operands, have %v", err)
	}
	if everr.Op != rpn.Plus || everr.Depth != 1 {
		t.Errorf("expected '+' with 1 operand, have %q with %d", everr.Op, everr.Depth)
	}
	//
	_, err = evaluator.Evaluate("1 2 3", nil)
	if !errors.As(err, &everr) || everr.Kind() != rpn.MalformedExpression || everr.Depth != 3 {
		t.Errorf("expected malformed expression with 3 values left, have %v", err)
	}
}

func TestStackOverflowAtCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	n := evaluator.New().Capacity()
	if n != 100 {
		t.Errorf("expected default capacity of 100, have %d", n)
	}
	full := strings.Repeat("1 ", n)
	if _, err := evaluator.Evaluate(full, nil); !errors.Is(err, rpn.ErrMalformedExpression) {
		t.Errorf("expected %d pushes to succeed and leave a malformed expression, have %v", n, err)
	}
	_, err := evaluator.Evaluate(full+"1", nil)
	var everr *rpn.EvalError
	if !errors.As(err, &everr) || everr.Kind() != rpn.StackOverflow {
		t.Fatalf("expected stack overflow, have %v", err)
	}
	if everr.Depth != n || everr.Pos != 2*n {
		t.Errorf("expected overflow at push #%d (position %d), have depth %d at %d",
			n+1, 2*n, everr.Depth, everr.Pos)
	}
	// the stack has room for N values, operators may follow
	sum := full + strings.Repeat("+ ", n-1)
	if r, err := evaluator.Evaluate(sum, nil); err != nil || r != float64(n) {
		t.Errorf("expected sum of %d ones to be %d, have %g (%v)", n, n, r, err)
	}
}

func TestCapacityOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	ev := evaluator.New(evaluator.Capacity(2))
	if _, err := ev.Evaluate("1 2 +", nil); err != nil {
		t.Errorf("expected 2 values to fit, have %v", err)
	}
	if _, err := ev.Evaluate("1 2 3 + +", nil); !errors.Is(err, rpn.ErrStackOverflow) {
		t.Errorf("expected stack overflow for capacity 2, have %v", err)
	}
	if ev = evaluator.New(evaluator.Capacity(-1)); ev.Capacity() != 100 {
		t.Errorf("expected invalid capacity to select default, have %d", ev.Capacity())
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	ev := evaluator.New()
	for _, f := range loadFixtures(t) {
		r1, err1 := ev.Evaluate(f.Expr, nil)
		for i := 0; i < 3; i++ {
			r2, err2 := ev.Evaluate(f.Expr, nil)
			if r1 != r2 || rpn.KindOf(err1) != rpn.KindOf(err2) {
				t.Errorf("evaluation of %q is not repeatable: %g/%v vs %g/%v", f.Expr, r1, err1, r2, err2)
			}
		}
	}
}

func TestConcurrentEvaluations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	ev := evaluator.New()
	fixtures := loadFixtures(t)
	var wg sync.WaitGroup
	failures := make(chan string, len(fixtures)*4)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, f := range fixtures {
				r, err := ev.Evaluate(f.Expr, nil)
				if f.Error == "" && (err != nil || r != f.Result) {
					failures <- f.Expr
				}
			}
		}()
	}
	wg.Wait()
	close(failures)
	for expr := range failures {
		t.Errorf("concurrent evaluation of %q failed", expr)
	}
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	rec := evaluator.NewRecorder()
	r, err := evaluator.Evaluate("3 4 + 5 *", rec)
	if err != nil || r != 35 {
		t.Fatalf("expected 35, have %g (%v)", r, err)
	}
	expect := []struct {
		op    string
		stack string
	}{
		{"push 3", "[3]"},
		{"push 4", "[3 4]"},
		{"3 + 4 = 7", "[7]"},
		{"push 5", "[7 5]"},
		{"7 * 5 = 35", "[35]"},
	}
	steps := rec.Steps()
	if len(steps) != len(expect) {
		t.Fatalf("expected %d steps, have %d", len(expect), len(steps))
	}
	for i, x := range expect {
		if steps[i].String() != x.op || steps[i].StackString() != x.stack {
			t.Errorf("step %d: expected %s -> %s, have %s -> %s", i, x.op, x.stack,
				steps[i], steps[i].StackString())
		}
	}
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("expected recorder to be empty after reset")
	}
}

func TestObserverDoesNotChangeResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.eval")
	defer teardown()
	//
	var rec evaluator.Recorder
	count := 0
	counter := evaluator.ObserverFunc(func(evaluator.Step) { count++ })
	for _, f := range loadFixtures(t) {
		r1, err1 := evaluator.Evaluate(f.Expr, nil)
		r2, err2 := evaluator.Evaluate(f.Expr, &rec)
		r3, err3 := evaluator.Evaluate(f.Expr, counter)
		if r1 != r2 || r1 != r3 || rpn.KindOf(err1) != rpn.KindOf(err2) || rpn.KindOf(err1) != rpn.KindOf(err3) {
			t.Errorf("observing %q changed the outcome", f.Expr)
		}
	}
	if count != rec.Len() {
		t.Errorf("expected observers to see the same number of steps, have %d and %d", count, rec.Len())
	}
}

// --- Benchmarks ------------------------------------------------------------

func BenchmarkEvaluate(b *testing.B) {
	expr := "15 7 1 1 + - / 3 * 2 1 1 + + -"
	for i := 0; i < b.N; i++ {
		if _, err := evaluator.Evaluate(expr, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateLong(b *testing.B) {
	expr := strings.Repeat("1.5 ", 100) + strings.Repeat("+ ", 99)
	b.SetBytes(int64(len(expr)))
	for i := 0; i < b.N; i++ {
		if _, err := evaluator.Evaluate(expr, nil); err != nil {
			b.Fatal(err)
		}
	}
}
