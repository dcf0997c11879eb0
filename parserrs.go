package calc

import (
	"strconv"
	"strings"
)

// OperatorError is an error indicating an operator in a place where it cannot
// begin or continue an expression, e.g. directly after another operator or an
// open bracket. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was not understood.
	Operator string
	// After is the token preceding the operator.
	After string
}

func (err *OperatorError) Error() string {
	if err.After == "" {
		return errpos(err.Col, "unknown binary operator "+strconv.Quote(err.Operator))
	}
	return errpos(err.Col, "unexpected operator "+strconv.Quote(err.Operator)+" after "+strconv.Quote(err.After))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket with no matching close
// bracket. It implements InputError.
type BracketError struct {
	// Col is the position of the token found where the close bracket belongs.
	Col int
	// Left is the opening bracket.
	Left string
	// Func is the function whose argument list is unclosed, if any.
	Func string
}

func (err *BracketError) Error() string {
	if err.Func != "" {
		return errpos(err.Col, "missing close bracket after argument to "+err.Func)
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name that is not followed by a
// bracketed argument. It implements InputError.
type CallError struct {
	// Col is the position of the token following the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "expected ( after function name "+err.Func)
}

func (err *CallError) Pos() int {
	return err.Col
}

// UnaryError is an error indicating a unary minus applied to something other
// than a number or a bracketed expression. It implements InputError.
type UnaryError struct {
	// Col is the position of the token following the minus.
	Col int
	// Operand is the token following the minus, or empty at the end of the
	// input.
	Operand string
}

func (err *UnaryError) Error() string {
	if err.Operand == "" {
		return errpos(err.Col, "missing operand for unary minus")
	}
	return errpos(err.Col, "invalid operand for unary minus: "+strconv.Quote(err.Operand))
}

func (err *UnaryError) Pos() int {
	return err.Col
}

// MissingOperatorError is an error indicating a number immediately following
// a complete term. It implements InputError.
type MissingOperatorError struct {
	// Col is the position of the number.
	Col int
	// Text is the number.
	Text string
}

func (err *MissingOperatorError) Error() string {
	return errpos(err.Col, "missing operator before "+err.Text)
}

func (err *MissingOperatorError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot begin a term, such as
// an unknown name. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating tokens left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
	// Tokens is the text of every leftover token.
	Tokens []string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected tokens remaining: "+strings.Join(err.Tokens, " "))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty input or an input that
// ends where a term is required.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression at end")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SpacingError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*UnaryError)(nil)
	_ InputError = (*MissingOperatorError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
