package calc

import (
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// function identifies one of the built-in functions of one argument.
type function int8

const (
	fnNone function = iota
	fnSqrt
	fnSin
	fnCos
	fnTg
	fnCtg
	fnLn
	fnExp
	fnArctg
)

var fnnames = [...]string{
	fnNone:  "",
	fnSqrt:  "sqrt",
	fnSin:   "sin",
	fnCos:   "cos",
	fnTg:    "tg",
	fnCtg:   "ctg",
	fnLn:    "ln",
	fnExp:   "exp",
	fnArctg: "arctg",
}

func (f function) String() string {
	if f <= fnNone || int(f) >= len(fnnames) {
		return "function(" + strconv.Itoa(int(f)) + ")"
	}
	return fnnames[f]
}

// globalfuncs maps names to the functions they call.
var globalfuncs = func() map[string]function {
	m := make(map[string]function, len(fnnames)-1)
	for f, name := range fnnames {
		if name != "" {
			m[name] = function(f)
		}
	}
	return m
}()

// constprec is the precision in bits used to compute constants before they
// are rounded to float64.
const constprec = 64

// globalconsts maps names to the constants they denote. Constants are
// replaced by their values when an expression is parsed.
var globalconsts = map[string]float64{
	"pi": bigconst(bigfloat.Pi),
	"e": bigconst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

func bigconst(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	x, _ := r.Float64()
	return x
}

// Funcs returns the names of the functions recognized in expressions, sorted.
func Funcs() []string {
	return sortedkeys(globalfuncs)
}

// Consts returns the names of the constants recognized in expressions, sorted.
func Consts() []string {
	return sortedkeys(globalconsts)
}

func sortedkeys[V any](m map[string]V) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// angular reports whether f takes an angle, so that its argument is converted
// from degrees when evaluating in degrees.
func (f function) angular() bool {
	switch f {
	case fnSin, fnCos, fnTg, fnCtg:
		return true
	default:
		return false
	}
}

// call applies f to x. Outside the functions' domains, the results are
// whatever package math gives, except that a cotangent of a zero tangent is a
// division by zero.
func (f function) call(ctx *Context, x float64) (float64, error) {
	if ctx.deg && f.angular() {
		x = x * math.Pi / 180
	}
	switch f {
	case fnSqrt:
		return math.Sqrt(x), nil
	case fnSin:
		return math.Sin(x), nil
	case fnCos:
		return math.Cos(x), nil
	case fnTg:
		return math.Tan(x), nil
	case fnCtg:
		t := math.Tan(x)
		if t == 0 {
			return 0, &ArithError{Op: "ctg", X: x, Err: ErrDivideByZero}
		}
		return 1 / t, nil
	case fnLn:
		return math.Log(x), nil
	case fnExp:
		return math.Exp(x), nil
	case fnArctg:
		r := math.Atan(x)
		if ctx.deg {
			r = r * 180 / math.Pi
		}
		return r, nil
	default:
		return 0, &FuncError{Func: f}
	}
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain in the reals.
type DomainError struct {
	// X and Y are the operands.
	X, Y float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	return ftoa(err.X) + " " + err.Func + " " + ftoa(err.Y) + " outside domain of " + err.Func
}

// FuncError is an error returned when evaluating a call to a function that
// does not exist. Parsing never produces such calls.
type FuncError struct {
	Func function
}

func (err *FuncError) Error() string {
	return "unsupported function " + err.Func.String()
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
