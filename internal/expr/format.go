package expr

import (
	"math"
	"strconv"
	"strings"
)

// Exponent form is used outside [expLow, expHigh).
const (
	expLow  = 1e-6
	expHigh = 1e21
)

// Format renders v the way a calculator display shows a number: integers
// without a fractional part, other values with the shortest decimal expansion
// that round-trips, and very large or very small magnitudes in exponent form
// ("1e+21", "1.5e-7"). Negative zero renders as "0".
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= expHigh || abs < expLow {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent turns Go's "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
