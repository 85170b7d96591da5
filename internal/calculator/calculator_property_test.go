package calculator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// keypadTokens lists every token the keypad can emit.
var keypadTokens = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "%",
	GlyphAdd, GlyphSubtract, GlyphMultiply, GlyphDivide,
}

// keySequence generates a random run of key presses as indices into keypadTokens.
func keySequence() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(keypadTokens)-1))
}

func pressIndices(c *Calculator, idx []int) {
	for _, i := range idx {
		_ = c.Append(keypadTokens[i])
	}
}

func TestCalculator_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("clear after any appends leaves an empty buffer", prop.ForAll(
		func(idx []int) bool {
			c := New()
			pressIndices(c, idx)
			c.Clear()
			return c.Expression() == "" && c.Result() == ""
		},
		keySequence(),
	))

	properties.Property("every keypad token appends exactly one character", prop.ForAll(
		func(idx []int) bool {
			c := New()
			pressIndices(c, idx)
			return len(c.Expression()) == len(idx)
		},
		keySequence(),
	))

	properties.Property("delete after append restores the previous buffer", prop.ForAll(
		func(idx []int, last int) bool {
			c := New()
			pressIndices(c, idx)
			before := c.Expression()
			_ = c.Append(keypadTokens[last])
			c.DeleteLast()
			return c.Expression() == before
		},
		keySequence(), gen.IntRange(0, len(keypadTokens)-1),
	))

	properties.Property("evaluate always yields exactly one of value or error", prop.ForAll(
		func(idx []int) bool {
			c := New()
			pressIndices(c, idx)
			out := c.Evaluate()
			if out.Err {
				return out.Value == "" && c.Result() == "Error"
			}
			return out.Value != "" && c.Result() == out.Value
		},
		keySequence(),
	))

	properties.Property("theme changes never alter expression or result", prop.ForAll(
		func(idx []int, toggles int) bool {
			c := New()
			pressIndices(c, idx)
			c.Evaluate()
			expr, res := c.Expression(), c.Result()
			for i := 0; i < toggles; i++ {
				c.SetTheme(c.Theme().Toggle())
			}
			return c.Expression() == expr && c.Result() == res
		},
		keySequence(), gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
