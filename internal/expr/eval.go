package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	apperrors "github.com/agbru/keycalc/internal/errors"
)

// ErrorMarker is the fixed result shown when an expression cannot be computed.
const ErrorMarker = "Error"

// maxDepth bounds nesting of parentheses and unary signs.
const maxDepth = 256

var (
	// ErrEmpty is returned for input that contains no tokens at all.
	ErrEmpty = errors.New("empty expression")
	// ErrSyntax is the sentinel wrapped by every SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrNonFinite is returned when the value is infinite or NaN.
	ErrNonFinite = errors.New("result is not a finite number")
)

// SyntaxError locates a grammar violation by byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap lets errors.Is(err, ErrSyntax) match any SyntaxError.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

type parser struct {
	lex   lexer
	tok   token
	depth int
}

// Evaluate computes the value of expression.
func Evaluate(expression string) (float64, error) {
	if strings.TrimSpace(expression) == "" {
		return 0, ErrEmpty
	}

	p := &parser{lex: lexer{src: expression}}
	if err := p.advance(); err != nil {
		return 0, err
	}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.tok.kind != tokEOF {
		return 0, p.unexpected()
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}

// Calculate evaluates expression and renders the value with Format.
// Every failure, including a panic inside the evaluator, comes back as an
// apperrors.EvaluationError.
func Calculate(expression string) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
			err = apperrors.EvaluationError{Expression: expression, Cause: fmt.Errorf("evaluator panic: %v", r)}
		}
	}()

	v, evalErr := Evaluate(expression)
	if evalErr != nil {
		return "", apperrors.EvaluationError{Expression: expression, Cause: evalErr}
	}
	return Format(v), nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) unexpected() error {
	if p.tok.kind == tokEOF {
		return &SyntaxError{Pos: p.tok.pos, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Pos: p.tok.pos, Msg: fmt.Sprintf("unexpected %s %q", p.tok.kind, p.tok.text)}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return &SyntaxError{Pos: p.tok.pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// expr := term { ('+' | '-') term }
func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOperator && (p.tok.op == '+' || p.tok.op == '-') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return 0, err
		}
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

// term := unary { ('*' | '/' | '%') unary }
func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOperator && (p.tok.op == '*' || p.tok.op == '/' || p.tok.op == '%') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return 0, err
		}
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		switch op {
		case '*':
			left *= right
		case '/':
			left /= right
		case '%':
			left = math.Mod(left, right)
		}
	}
	return left, nil
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (float64, error) {
	if p.tok.kind != tokOperator || (p.tok.op != '+' && p.tok.op != '-') {
		return p.primary()
	}
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	neg := p.tok.op == '-'
	if err := p.advance(); err != nil {
		return 0, err
	}
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	if neg {
		return -v, nil
	}
	return v, nil
}

// primary := number | '(' expr ')'
func (p *parser) primary() (float64, error) {
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.value
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil

	case tokLParen:
		if err := p.enter(); err != nil {
			return 0, err
		}
		defer p.leave()

		open := p.tok.pos
		if err := p.advance(); err != nil {
			return 0, err
		}
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.tok.kind != tokRParen {
			if p.tok.kind == tokEOF {
				return 0, &SyntaxError{Pos: open, Msg: "unclosed parenthesis"}
			}
			return 0, p.unexpected()
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil

	default:
		return 0, p.unexpected()
	}
}
