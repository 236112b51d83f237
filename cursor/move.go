package cursor

import "github.com/iw2rmb/kodeline/internal/runeutil"

func (c Cursor) Left() Cursor {
	if c.offset == 0 {
		return c
	}
	return c.withOffset(c.offset - 1)
}

func (c Cursor) Right() Cursor {
	if c.offset == len(c.runes) {
		return c
	}
	return c.withOffset(c.offset + 1)
}

// Up moves one visual row up, keeping the cell column as close as the
// target row allows. On the first row it returns c unchanged.
func (c Cursor) Up() Cursor {
	rows := c.Rows()
	row := rowForOffset(rows, c.offset)
	if row == 0 {
		return c
	}
	col := cellsBetween(c.runes, rows[row].Start, c.offset)
	return c.withOffset(offsetInRow(c.runes, rows[row-1], col))
}

// Down moves one visual row down. On the last row it returns c unchanged.
func (c Cursor) Down() Cursor {
	rows := c.Rows()
	row := rowForOffset(rows, c.offset)
	if row == len(rows)-1 {
		return c
	}
	col := cellsBetween(c.runes, rows[row].Start, c.offset)
	return c.withOffset(offsetInRow(c.runes, rows[row+1], col))
}

// StartOfLine moves to the start of the current visual row.
func (c Cursor) StartOfLine() Cursor {
	rows := c.Rows()
	return c.withOffset(rows[rowForOffset(rows, c.offset)].Start)
}

// EndOfLine moves to the end of the current visual row. On a soft-wrapped
// row that is the last character of the row.
func (c Cursor) EndOfLine() Cursor {
	rows := c.Rows()
	return c.withOffset(rowEndOffset(rows[rowForOffset(rows, c.offset)]))
}

// PrevWord moves to the start of the word before the caret.
func (c Cursor) PrevWord() Cursor {
	return c.withOffset(prevWordBoundary(c.runes, c.offset))
}

// NextWord moves to the start of the word after the caret.
func (c Cursor) NextWord() Cursor {
	return c.withOffset(nextWordBoundary(c.runes, c.offset))
}

// Word boundary rules:
// - a word is a maximal run of non-whitespace
// - newlines are whitespace, so motion crosses logical lines
func prevWordBoundary(runes []rune, offset int) int {
	i := clampInt(offset, 0, len(runes))
	for i > 0 && runeutil.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !runeutil.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(runes []rune, offset int) int {
	i := clampInt(offset, 0, len(runes))
	for i < len(runes) && !runeutil.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && runeutil.IsSpace(runes[i]) {
		i++
	}
	return i
}
