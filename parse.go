package calc

import (
	"errors"
	"strconv"
)

// Expr = Term { Binop Term }
// Term = Call | const | num | '-' num | '-' '(' Expr ')' | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Binop = '+' | '-' | '*' | '/' | '^'
//
// A '(' may not be followed directly by '+', '*', '/', or '^', and a term may
// not be followed directly by a number.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser is a cursor over a token list that ends with tokenEOF.
type parser struct {
	toks []lexToken
	k    int
}

// peek returns the next token without consuming it.
func (p *parser) peek() lexToken {
	return p.toks[p.k]
}

// next consumes the next token. At the end of the input, it keeps returning
// the EOF token.
func (p *parser) next() lexToken {
	tok := p.toks[p.k]
	if tok.kind != tokenEOF {
		p.k++
	}
	return tok
}

// Parse parses an expression so it can be evaluated with a context.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	p := parser{toks: toks}
	n, err := parseexpr(&p)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		err := TrailingError{Col: tok.pos}
		for _, t := range p.toks[p.k : len(p.toks)-1] {
			err.Tokens = append(err.Tokens, t.text)
		}
		return nil, &err
	}
	return &Expr{n: n}, nil
}

// parseexpr parses a complete subexpression.
func parseexpr(p *parser) (*node, error) {
	lhs, err := parseterm(p)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind == tokenNum {
		return nil, &MissingOperatorError{Col: tok.pos, Text: tok.text}
	}
	return parsebinop(p, lhs, exprprec)
}

// parsebinop parses binary operators and their right-hand terms for as long as
// the operators bind at least as tightly as until.
func parsebinop(p *parser, lhs *node, until operator) (*node, error) {
	for {
		tok := p.peek()
		if tok.kind != tokenOp {
			return lhs, nil
		}
		op := binop(tok.text)
		if op.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		if op.prec < until.prec {
			return lhs, nil
		}
		p.next()
		rhs, err := parseterm(p)
		if err != nil {
			return nil, err
		}
		for {
			next := p.peek()
			if next.kind != tokenOp {
				break
			}
			prec := binop(next.text)
			if !prec.moreBinding(op) {
				break
			}
			rhs, err = parsebinop(p, rhs, prec)
			if err != nil {
				return nil, err
			}
		}
		lhs = &node{kind: op.op, left: lhs, right: rhs}
	}
}

// parseterm parses a single operand of a binary operator.
func parseterm(p *parser) (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenIdent:
		if fn, ok := globalfuncs[tok.text]; ok {
			return parsecall(p, tok.text, fn)
		}
		if v, ok := globalconsts[tok.text]; ok {
			return &node{kind: nodeNum, num: v}, nil
		}
		return nil, &TokenError{Col: tok.pos, Text: tok.text}
	case tokenOp:
		if tok.text != "-" {
			return nil, &TokenError{Col: tok.pos, Text: tok.text}
		}
		return parseneg(p)
	case tokenOpen:
		if next := p.peek(); next.kind == tokenOp && next.text != "-" {
			return nil, &OperatorError{Col: next.pos, Operator: next.text, After: tok.text}
		}
		return parsegroup(p, tok)
	case tokenNum:
		return numnode(tok), nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tokenClose:
		return nil, &TokenError{Col: tok.pos, Text: tok.text}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

// parseneg parses the operand of a unary minus, which must be a number or a
// bracketed expression.
func parseneg(p *parser) (*node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenOpen:
		p.next()
		n, err := parsegroup(p, tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	case tokenNum:
		p.next()
		return &node{kind: nodeNeg, left: numnode(tok)}, nil
	default:
		return nil, &UnaryError{Col: tok.pos, Operand: tok.text}
	}
}

// parsegroup parses the rest of a bracketed expression after its open bracket.
func parsegroup(p *parser, open lexToken) (*node, error) {
	n, err := parseexpr(p)
	if err != nil {
		return nil, err
	}
	if end := p.next(); end.kind != tokenClose {
		return nil, &BracketError{Col: end.pos, Left: open.text}
	}
	return n, nil
}

// parsecall parses the bracketed argument to a function.
func parsecall(p *parser, name string, fn function) (*node, error) {
	open := p.next()
	if open.kind != tokenOpen {
		return nil, &CallError{Col: open.pos, Func: name}
	}
	arg, err := parseexpr(p)
	if err != nil {
		return nil, err
	}
	if end := p.next(); end.kind != tokenClose {
		return nil, &BracketError{Col: end.pos, Left: open.text, Func: name}
	}
	return &node{kind: nodeCall, fn: fn, left: arg}, nil
}

// numnode creates a number node from a number token. Numbers too large for a
// float64 become infinities.
func numnode(tok lexToken) *node {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: invalid number: " + tok.text + " (" + err.Error() + ")")
	}
	return &node{kind: nodeNum, num: v}
}

// String creates a string representation of the parsed expression with every
// term in brackets.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
