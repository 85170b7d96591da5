package calculator

import "unicode/utf8"

// Keypad operator glyphs.
const (
	GlyphAdd      = "➕"
	GlyphSubtract = "➖"
	GlyphMultiply = "✖"
	GlyphDivide   = "➗"
)

// operatorMap canonicalizes every accepted operator spelling.
var operatorMap = map[string]string{
	GlyphAdd:      "+",
	GlyphSubtract: "-",
	GlyphMultiply: "*",
	GlyphDivide:   "/",
	"×":           "*",
	"÷":           "/",
	"−":           "-",
	"+":           "+",
	"-":           "-",
	"*":           "*",
	"/":           "/",
}

// KeypadRows is the button layout of the keypad, top to bottom.
var KeypadRows = [][]string{
	{"7", "8", "9", GlyphDivide},
	{"4", "5", "6", GlyphMultiply},
	{"1", "2", "3", GlyphSubtract},
	{"0", ".", "%", GlyphAdd},
}

// Canonical returns the text a keypad token appends to the expression.
func Canonical(token string) (string, bool) {
	if op, ok := operatorMap[token]; ok {
		return op, true
	}
	if len(token) == 1 {
		c := token[0]
		if (c >= '0' && c <= '9') || c == '.' || c == '%' {
			return token, true
		}
	}
	return "", false
}

// IsOperator reports whether token is one of the operator spellings.
func IsOperator(token string) bool {
	_, ok := operatorMap[token]
	return ok
}

// SplitKeys breaks typed input into keypad tokens, one per rune, skipping
// spaces. "7✖6" yields ["7", "✖", "6"].
func SplitKeys(s string) []string {
	keys := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		keys = append(keys, string(r))
	}
	return keys
}
