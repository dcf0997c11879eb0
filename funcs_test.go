package calc

import (
	"errors"
	"math"
	"testing"
)

func TestConsts(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"pi", math.Pi},
		{"e", math.E},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, ok := globalconsts[c.name]
			if !ok {
				t.Fatalf("no constant %s", c.name)
			}
			if math.Abs(v-c.want) > 1e-15 {
				t.Errorf("%s is %v, want %v", c.name, v, c.want)
			}
		})
	}
}

func TestFuncString(t *testing.T) {
	cases := []struct {
		fn   function
		want string
	}{
		{fnSqrt, "sqrt"},
		{fnTg, "tg"},
		{fnArctg, "arctg"},
		{fnNone, "function(0)"},
		{function(100), "function(100)"},
	}
	for _, c := range cases {
		if got := c.fn.String(); got != c.want {
			t.Errorf("wrong name: want %q, got %q", c.want, got)
		}
	}
}

func TestAngular(t *testing.T) {
	for name, fn := range globalfuncs {
		want := name == "sin" || name == "cos" || name == "tg" || name == "ctg"
		if fn.angular() != want {
			t.Errorf("%s: angular is %t", name, !want)
		}
	}
}

func TestInvalidNodes(t *testing.T) {
	cases := []struct {
		name string
		n    *node
		err  interface{}
	}{
		{"none", &node{}, new(*NodeError)},
		{"unknown-kind", &node{kind: 100}, new(*NodeError)},
		{"unknown-func", &node{kind: nodeCall, fn: fnNone, left: num(1)}, new(*FuncError)},
		{"unknown-func-deg", &node{kind: nodeCall, fn: function(100), left: num(1)}, new(*FuncError)},
		{"nested", &node{kind: nodeAdd, left: num(1), right: &node{}}, new(*NodeError)},
		{"neg", &node{kind: nodeNeg, left: &node{}}, new(*NodeError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, ctx := range []*Context{NewContext(), NewContext(Degrees())} {
				r, err := ctx.Eval(&Expr{n: c.n})
				if err == nil {
					t.Fatalf("no error, got %g", r)
				}
				if !errors.As(err, c.err) {
					t.Errorf("%#v is not %T", err, c.err)
				}
			}
		})
	}
}

func TestArith(t *testing.T) {
	cases := []struct {
		name string
		op   nodeKind
		l, r float64
		want float64
		err  error
	}{
		{"add", nodeAdd, 1, 2, 3, nil},
		{"sub", nodeSub, 4, 2, 2, nil},
		{"mul", nodeMul, 3, 5, 15, nil},
		{"div", nodeDiv, 10, 2, 5, nil},
		{"div-zero", nodeDiv, 1, 0, 0, ErrDivideByZero},
		{"div-negzero", nodeDiv, 1, math.Copysign(0, -1), 0, ErrDivideByZero},
		{"div-overflow", nodeDiv, 1e300, 1e-300, 0, ErrOverflow},
		{"div-small", nodeDiv, 1e-300, 1e300, 0, nil},
		{"pow", nodePow, 2, 10, 1024, nil},
		{"pow-neg-int", nodePow, -2, 2, 4, nil},
		{"pow-overflow", nodePow, 10, 400, math.Inf(1), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith(c.op, c.l, c.r)
			if !errors.Is(err, c.err) {
				t.Fatalf("wrong error: want %v, got %v", c.err, err)
			}
			if r != c.want {
				t.Errorf("wrong result: want %g, got %g", c.want, r)
			}
		})
	}
	if _, err := arith(nodePow, -2, 0.5); !errors.As(err, new(*DomainError)) {
		t.Errorf("(-2)^0.5 gave %#v, not *DomainError", err)
	}
	if _, err := arith(nodeNeg, 1, 2); !errors.As(err, new(*NodeError)) {
		t.Errorf("arith on nodeNeg gave %#v, not *NodeError", err)
	}
}
