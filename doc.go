// Package calc implements a small floating-point calculator.
//
// Expressions use the usual binary operators + - * / ^, parentheses, the
// functions sqrt, sin, cos, tg, ctg, ln, exp, and arctg, and the constants pi
// and e. The syntax is deliberately strict. Numbers may not be separated only
// by spaces, two operators may not appear in a row, and unary minus applies
// only to a number or a parenthesized group: "2 * (-3)" is fine, but
// "2 * -3" and "-sin(x)" are not. "a^b" is exponentiation and associates to
// the right.
//
// Trigonometric functions take radians unless the evaluation Context is
// created with Degrees.
//
package calc
