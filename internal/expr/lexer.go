package expr

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOperator
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokOperator:
		return "operator"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type token struct {
	kind  tokenKind
	pos   int
	op    byte
	text  string
	value float64
}

// lexer splits an expression into tokens. Only ASCII input is meaningful;
// any other byte is reported at its offset.
type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '+' || c == '-' || c == '*' || c == '/' || c == '%':
		l.pos++
		// "++" and "--" are not two signs; reject them where they touch.
		if (c == '+' || c == '-') && l.pos < len(l.src) && l.src[l.pos] == c {
			return token{}, &SyntaxError{Pos: l.pos, Msg: fmt.Sprintf("unexpected %q after %q", c, c)}
		}
		return token{kind: tokOperator, pos: start, op: c, text: string(c)}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen, pos: start, text: "("}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, pos: start, text: ")"}, nil
	case isDigit(c) || c == '.':
		return l.number()
	default:
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", rune(c))}
	}
}

// number scans digits with at most one decimal point. A second point ends the
// literal, so "1.2.3" lexes as "1.2" followed by ".3" and fails in the parser.
func (l *lexer) number() (token, error) {
	start := l.pos
	digits := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
		digits++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
			digits++
		}
	}
	text := l.src[start:l.pos]
	if digits == 0 {
		return token{}, &SyntaxError{Pos: start, Msg: "decimal point without digits"}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Only a range error is possible here; the literal is too large for float64.
		return token{}, fmt.Errorf("literal %q: %w", text, ErrNonFinite)
	}
	return token{kind: tokNumber, pos: start, text: text, value: v}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
