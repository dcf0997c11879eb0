//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2", false)
	f.Add("sin(90)", true)
	f.Add("-(2^0.5)/ctg(0)", false)
	f.Add("1×2", false)
	f.Fuzz(func(t *testing.T, s string, deg bool) {
		opt := calc.Radians()
		if deg {
			opt = calc.Degrees()
		}
		calc.Eval(s, opt)
	})
}
