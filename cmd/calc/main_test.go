package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zephyrtronium/calc"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "calc.yaml")
	assert.NoError(t, os.WriteFile(name, []byte(text), 0o644))
	return name
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		cfg  string
		out  string
	}{
		{name: "add", args: []string{"1+2"}, out: "3\n"},
		{name: "prec", args: []string{"2 + 3 * 4"}, out: "14\n"},
		{name: "pow", args: []string{"2^3^2"}, out: "512\n"},
		{name: "degrees", args: []string{"-degrees", "sin(90)"}, out: "1\n"},
		{name: "fmt", args: []string{"-fmt", "%.3f", "1/3"}, out: "0.333\n"},
		{name: "echo", args: []string{"-echo", "1+2"}, out: "((1) + (2)) : 3\n"},
		{name: "help", args: []string{"-h"}, out: ""},
		{name: "config-degrees", args: []string{"sin(90)"}, cfg: "degrees: true\n", out: "1\n"},
		{name: "config-fmt", args: []string{"1/3"}, cfg: "fmt: \"%.2f\"\n", out: "0.33\n"},
		{name: "config-empty", args: []string{"1/4"}, cfg: "", out: "0.25\n"},
		{name: "flag-overrides", args: []string{"-degrees=false", "-fmt", "%.3f", "sin(90)"}, cfg: "degrees: true\nfmt: \"%.1f\"\n", out: "0.894\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := c.args
			if c.cfg != "" || strings.HasPrefix(c.name, "config") {
				args = append([]string{"-config", writeConfig(t, c.cfg)}, args...)
			}
			var out strings.Builder
			assert.NoError(t, run(args, &out))
			assert.Equal(t, c.out, out.String())
		})
	}
}

func TestRunAST(t *testing.T) {
	var out strings.Builder
	assert.NoError(t, run([]string{"-ast", "sqrt(4)"}, &out))
	assert.Contains(t, out.String(), "calc.Expr")
	assert.True(t, strings.HasSuffix(out.String(), "\n2\n"), "result missing from %q", out.String())
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		cfg  string
	}{
		{name: "no-args", args: nil},
		{name: "two-args", args: []string{"1", "2"}},
		{name: "bad-flag", args: []string{"-radians", "1"}},
		{name: "lex", args: []string{"1 $ 2"}},
		{name: "parse", args: []string{"(1+2"}},
		{name: "domain", args: []string{"(-8)^(1/3)"}},
		{name: "unknown-key", args: []string{"1"}, cfg: "degree: true\n"},
		{name: "bad-yaml", args: []string{"1"}, cfg: "degrees: [\n"},
		{name: "bad-type", args: []string{"1"}, cfg: "degrees: sometimes\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := c.args
			if c.cfg != "" {
				args = append([]string{"-config", writeConfig(t, c.cfg)}, args...)
			}
			var out strings.Builder
			assert.Error(t, run(args, &out))
			assert.Equal(t, "", out.String())
		})
	}
}

func TestRunEvalError(t *testing.T) {
	var out strings.Builder
	err := run([]string{"-echo", "1/0"}, &out)
	assert.IsError(t, err, calc.ErrDivideByZero)
	assert.EqualError(t, err, "1 / 0: division by zero")
	assert.Equal(t, "", out.String())
}

func TestRunInputError(t *testing.T) {
	err := run([]string{"2 * -3"}, new(strings.Builder))
	assert.EqualError(t, err, `5: unexpected operator "-" after "*"`)
	_, ok := err.(calc.InputError)
	assert.True(t, ok, "%#v is not an InputError", err)
}

func TestRunMissingConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nothing.yaml")
	err := run([]string{"-config", name, "1"}, new(strings.Builder))
	assert.IsError(t, err, os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "degrees: true\nfmt: \"%e\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, config{Degrees: true, Format: "%e"}, cfg)
}
