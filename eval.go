package calc

import (
	"errors"
	"math"
)

// Context is a context for evaluating expressions. A Context is never
// modified after creation, so it is safe to use concurrently.
type Context struct {
	// deg indicates that trigonometric functions take degrees.
	deg bool
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type angleopt bool

func (angleopt) ctxOption() {}

// Degrees sets trigonometric functions to take arguments in degrees, and
// inverse trigonometric functions to return degrees.
func Degrees() ContextOption {
	return angleopt(true)
}

// Radians sets trigonometric functions to use radians. This is the default.
func Radians() ContextOption {
	return angleopt(false)
}

// NewContext creates a new evaluation context. Later options override earlier
// ones.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case angleopt:
			ctx.deg = bool(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	return &ctx
}

// Degrees returns whether ctx evaluates trigonometric functions in degrees.
func (ctx *Context) Degrees() bool {
	return ctx.deg
}

// Eval evaluates an expression and returns the result.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return e.n.eval(ctx)
}

// Eval evaluates the expression in ctx. It is the same as ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) (float64, error) {
	return ctx.Eval(e)
}

// eval computes the node's value.
func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNeg:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return arith(n.kind, l, r)
	case nodeCall:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return n.fn.call(ctx, x)
	default:
		return 0, &NodeError{Kind: n.kind}
	}
}

// arith applies a binary operator.
func arith(op nodeKind, l, r float64) (float64, error) {
	switch op {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &ArithError{Op: "/", X: l, Y: r, Err: ErrDivideByZero}
		}
		q := l / r
		if math.IsInf(q, 0) {
			return 0, &ArithError{Op: "/", X: l, Y: r, Err: ErrOverflow}
		}
		return q, nil
	case nodePow:
		// Guard against invalid exponentiations, i.e. negative base with
		// fractional exponent. Overflow is deliberately not checked.
		if l < 0 && (r != math.Trunc(r) || math.IsInf(r, 0)) {
			return 0, &DomainError{X: l, Y: r, Func: "^"}
		}
		return math.Pow(l, r), nil
	default:
		return 0, &NodeError{Kind: op}
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src string, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(a)
}

var (
	// ErrDivideByZero is the error underlying a division by exactly zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is the error underlying a division with an infinite result.
	ErrOverflow = errors.New("result is infinite")
)

// ArithError is an error from an arithmetic operation. It unwraps to
// ErrDivideByZero or ErrOverflow.
type ArithError struct {
	// Op is the operation, "/" or the name of a function.
	Op string
	// X and Y are the operands. Y is zero for functions.
	X, Y float64
	// Err is the underlying error.
	Err error
}

func (err *ArithError) Error() string {
	if err.Op == "/" {
		return ftoa(err.X) + " / " + ftoa(err.Y) + ": " + err.Err.Error()
	}
	return err.Op + "(" + ftoa(err.X) + "): " + err.Err.Error()
}

func (err *ArithError) Unwrap() error {
	return err.Err
}

// NodeError is an error from evaluating a node of an unknown kind. Parsing
// never produces such nodes.
type NodeError struct {
	Kind nodeKind
}

func (err *NodeError) Error() string {
	return "invalid expression node " + err.Kind.String()
}
