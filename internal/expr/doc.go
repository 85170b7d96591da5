// Package expr implements the arithmetic evaluator behind the calculator.
//
// The grammar is deliberately narrow: decimal literals, the binary operators
// + - * / and % (remainder), unary sign, and parentheses for grouping.
// Multiplicative operators bind tighter than additive ones and operators of
// equal precedence associate to the left:
//
//	expr    := term { ('+' | '-') term }
//	term    := unary { ('*' | '/' | '%') unary }
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')'
//	number  := digits [ '.' [ digits ] ] | '.' digits
//
// Anything outside this grammar is a syntax error. Results that are not finite
// (division or remainder by zero, overflow) are reported as ErrNonFinite.
// Calculate is the boundary used by the calculator: it never panics and
// reports every failure as an apperrors.EvaluationError.
package expr
