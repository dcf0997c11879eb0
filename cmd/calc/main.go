package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("Error: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		cfgname, verb   string
		deg, echo, tree bool
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.StringVar(&cfgname, "config", "", "YAML file with defaults for degrees and fmt")
	fs.StringVar(&verb, "fmt", "%g", "result formatting string")
	fs.BoolVar(&deg, "degrees", false, "trigonometric functions use degrees")
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.BoolVar(&tree, "ast", false, "print the structure of parse trees")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: calc [flags] expression\n\nfunctions: %v\nconstants: %v\n\n", calc.Funcs(), calc.Consts())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfgname != "" {
		cfg, err := loadConfig(cfgname)
		if err != nil {
			return err
		}
		// Flags given on the command line take priority over the file.
		given := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
		if !given["degrees"] {
			deg = cfg.Degrees
		}
		if !given["fmt"] && cfg.Format != "" {
			verb = cfg.Format
		}
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("need exactly one expression, have %d", fs.NArg())
	}
	a, err := calc.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	if tree {
		fmt.Fprintln(stdout, repr.String(a, repr.Indent("\t")))
	}
	opt := calc.Radians()
	if deg {
		opt = calc.Degrees()
	}
	r, err := calc.NewContext(opt).Eval(a)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintf(stdout, "%v : ", a)
	}
	fmt.Fprintf(stdout, verb+"\n", r)
	return nil
}
