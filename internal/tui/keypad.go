package tui

import (
	"github.com/agbru/keycalc/internal/calculator"
)

// action is what pressing a keypad button does.
type action int

const (
	actionAppend action = iota
	actionClear
	actionDelete
	actionEvaluate
	actionDark
	actionLight
)

// button is one keypad cell. Span is the number of grid columns it covers.
type button struct {
	label  string
	token  string
	action action
	span   int
}

// Keypad geometry, in terminal cells.
const (
	keypadColumns = 4
	keyWidth      = 7
	keyGap        = 1
	rowHeight     = 2 // one line of button, one blank line
)

// keypad is the button grid, top to bottom.
var keypad = buildKeypad()

func buildKeypad() [][]button {
	rows := make([][]button, 0, len(calculator.KeypadRows)+2)
	for _, r := range calculator.KeypadRows {
		row := make([]button, 0, len(r))
		for _, tok := range r {
			row = append(row, button{label: tok, token: tok, action: actionAppend, span: 1})
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		[]button{
			{label: "Clear", action: actionClear, span: 2},
			{label: "Del", action: actionDelete, span: 1},
			{label: "=", action: actionEvaluate, span: 1},
		},
		[]button{
			{label: "☾ Dark", action: actionDark, span: 2},
			{label: "☀ Light", action: actionLight, span: 2},
		},
	)
	return rows
}

// buttonWidth is the rendered width of a button spanning span columns.
func buttonWidth(span int) int {
	return span*keyWidth + (span-1)*keyGap
}

// columnOf returns the index of the button in row that covers grid column col.
func columnOf(row []button, col int) int {
	c := 0
	for i, b := range row {
		if col < c+b.span {
			return i
		}
		c += b.span
	}
	return len(row) - 1
}

// gridColumn returns the first grid column covered by row[i].
func gridColumn(row []button, i int) int {
	c := 0
	for j := 0; j < i; j++ {
		c += row[j].span
	}
	return c
}

// cursor is the focused keypad cell as a row and an index within that row.
type cursor struct {
	row, col int
}

// move shifts the cursor, keeping its grid column when crossing rows of
// different shapes.
func (c cursor) move(dRow, dCol int) cursor {
	if dCol != 0 {
		n := len(keypad[c.row])
		c.col = (c.col + dCol + n) % n
		return c
	}
	grid := gridColumn(keypad[c.row], c.col)
	c.row = (c.row + dRow + len(keypad)) % len(keypad)
	c.col = columnOf(keypad[c.row], grid)
	return c
}

// buttonAt returns the button covering the cell (x, y), relative to the
// top-left corner of the keypad, and whether there is one.
func buttonAt(x, y int) (cursor, bool) {
	if x < 0 || y < 0 || y%rowHeight != 0 {
		return cursor{}, false
	}
	row := y / rowHeight
	if row >= len(keypad) {
		return cursor{}, false
	}
	left := 0
	for i, b := range keypad[row] {
		w := buttonWidth(b.span)
		if x >= left && x < left+w {
			return cursor{row: row, col: i}, true
		}
		left += w + keyGap
	}
	return cursor{}, false
}
