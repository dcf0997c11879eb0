//go:build go1.18
// +build go1.18

package calc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("pi * 2 ^ 3 ^ 2")
	f.Add("sqrt((1 + 2)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := calc.Parse(s)
		if err != nil {
			if _, ok := err.(calc.InputError); !ok {
				t.Errorf("%q gave non-InputError %#v", s, err)
			}
			return
		}
		if strings.Contains(a.String(), "Inf") {
			// Literals too large for float64 have no source form.
			return
		}
		b, err := calc.Parse(a.String())
		if err != nil {
			t.Fatalf("reparsing %q from %q failed: %v", a.String(), s, err)
		}
		if a.String() != b.String() {
			t.Errorf("reparse changed %q to %q", a.String(), b.String())
		}
	})
}
