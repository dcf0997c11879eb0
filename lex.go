package calc

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or real token.
	tokenNum
	// tokenIdent is a function or constant name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// lexer scans a whitespace-stripped input. cols maps each rune of src back to
// its 1-based column in the original input.
type lexer struct {
	src  []rune
	cols []int
	k    int
	end  int
}

// tokenize splits an expression into tokens. The result always ends with a
// tokenEOF token positioned one column past the end of the input.
func tokenize(src string) ([]lexToken, error) {
	l, err := strip(src)
	if err != nil {
		return nil, err
	}
	var toks []lexToken
	for l.k < len(l.src) {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].kind == tokenOp && toks[i-1].kind == tokenOp {
			return nil, &OperatorError{Col: toks[i].pos, Operator: toks[i].text, After: toks[i-1].text}
		}
	}
	toks = append(toks, lexToken{kind: tokenEOF, pos: l.end})
	return toks, nil
}

// strip removes whitespace from src. Whitespace is allowed anywhere except
// between two digits, where it would silently join two numbers into one.
func strip(src string) (*lexer, error) {
	l := lexer{
		src:  make([]rune, 0, len(src)),
		cols: make([]int, 0, len(src)),
	}
	col := 0
	gap := false
	// last is the byte offset of the last kept rune.
	last := -1
	for i, r := range src {
		col++
		if unicode.IsSpace(r) {
			gap = true
			continue
		}
		if gap && isDigit(r) && last >= 0 && isDigit(l.src[len(l.src)-1]) {
			return nil, &SpacingError{
				Col:  l.cols[len(l.cols)-1],
				Text: src[last : i+len(string(r))],
			}
		}
		gap = false
		last = i
		l.src = append(l.src, r)
		l.cols = append(l.cols, col)
	}
	l.end = col + 1
	return &l, nil
}

// at returns the rune at index k of the stripped input, or 0 past its end.
func (l *lexer) at(k int) rune {
	if k < len(l.src) {
		return l.src[k]
	}
	return 0
}

// next scans the token beginning at the lexer's current position.
func (l *lexer) next() (lexToken, error) {
	r := l.src[l.k]
	tok := lexToken{pos: l.cols[l.k]}
	switch {
	case isDigit(r):
		tok.text = l.scanNum()
		tok.kind = tokenNum
	case r == '_', isLetter(r):
		tok.text = l.scanIdent()
		tok.kind = tokenIdent
	case r == '(':
		l.k++
		tok.text = "("
		tok.kind = tokenOpen
	case r == ')':
		l.k++
		tok.text = ")"
		tok.kind = tokenClose
	case strings.ContainsRune(Operators, r):
		l.k++
		tok.text = string(r)
		tok.kind = tokenOp
	default:
		return tok, &LexError{Text: string(r), Col: tok.pos}
	}
	return tok, nil
}

// scanNum scans the longest number at the current position: digits, then
// optionally a fraction, then optionally an exponent. A dot or e that does not
// continue a valid number is left for the next token.
func (l *lexer) scanNum() string {
	start := l.k
	l.digits()
	if l.at(l.k) == '.' && isDigit(l.at(l.k+1)) {
		l.k++
		l.digits()
	}
	if l.at(l.k) == 'e' {
		k := l.k + 1
		if c := l.at(k); c == '+' || c == '-' {
			k++
		}
		if isDigit(l.at(k)) {
			l.k = k
			l.digits()
		}
	}
	return string(l.src[start:l.k])
}

func (l *lexer) digits() {
	for isDigit(l.at(l.k)) {
		l.k++
	}
}

func (l *lexer) scanIdent() string {
	start := l.k
	for {
		r := l.at(l.k)
		if r != '_' && !isLetter(r) && !isDigit(r) {
			return string(l.src[start:l.k])
		}
		l.k++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexError indicates a rune that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Text is the offending rune.
	Text string
	// Col is the column of the rune in the original input.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

// SpacingError indicates two numbers separated only by whitespace. It
// implements InputError.
type SpacingError struct {
	// Col is the column of the last digit before the whitespace.
	Col int
	// Text is the input from that digit through the next one.
	Text string
}

func (err *SpacingError) Error() string {
	return errpos(err.Col, "numbers separated only by whitespace: "+strconv.Quote(err.Text))
}

func (err *SpacingError) Pos() int {
	return err.Col
}
