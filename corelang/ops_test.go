package corelang

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.core")
	defer teardown()
	//
	for i, x := range []struct {
		op     rpn.Operator
		a, b   float64
		result float64
	}{
		{rpn.Plus, 3, 4, 7},
		{rpn.Minus, 3, 4, -1},
		{rpn.Times, 3, 4, 12},
		{rpn.Div, 3, 4, 0.75},
		{rpn.Power, 2, 10, 1024},
		{rpn.Power, 4, 0.5, 2},
		{rpn.Div, 0, 5, 0},
	} {
		r, err := Apply(x.op, x.a, x.b)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		} else if r != x.result {
			t.Errorf("test %d: expected %g %s %g = %g, have %g", i, x.a, x.op, x.b, x.result, r)
		}
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.core")
	defer teardown()
	//
	for _, zero := range []float64{0, math.Copysign(0, -1)} {
		if _, err := Apply(rpn.Div, 4, zero); !errors.Is(err, rpn.ErrDivisionByZero) {
			t.Errorf("expected division by zero for divisor %g, got %v", zero, err)
		}
	}
	if r, err := Apply(rpn.Div, 1, 1e-300); err != nil || r < 1e299 {
		t.Errorf("expected tiny divisor to be accepted, have %g, %v", r, err)
	}
}

func TestApplyIllegalOperatorPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.core")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Apply to panic for illegal operator")
		}
	}()
	Apply(rpn.Operator('%'), 1, 2)
}
