package cursor

import "strings"

// Insert splices s at the caret and moves the caret past it.
// Carriage returns are normalized to '\n'.
func (c Cursor) Insert(s string) Cursor {
	if s == "" {
		return c
	}
	s = NormalizeNewlines(s)
	ins := []rune(s)
	return c.splice(c.offset, c.offset, ins, c.offset+len(ins))
}

// Backspace deletes the code point before the caret.
func (c Cursor) Backspace() Cursor {
	if c.offset == 0 {
		return c
	}
	return c.splice(c.offset-1, c.offset, nil, c.offset-1)
}

// Del deletes the code point at the caret.
func (c Cursor) Del() Cursor {
	if c.offset == len(c.runes) {
		return c
	}
	return c.splice(c.offset, c.offset+1, nil, c.offset)
}

// DeleteToLineStart deletes from the start of the visual row to the caret.
func (c Cursor) DeleteToLineStart() Cursor {
	start := c.StartOfLine().offset
	return c.splice(start, c.offset, nil, start)
}

// DeleteToLineEnd deletes from the caret to the end of the visual row.
// At the end of a logical line it joins the next line instead.
func (c Cursor) DeleteToLineEnd() Cursor {
	if c.offset < len(c.runes) && c.runes[c.offset] == '\n' {
		return c.Del()
	}
	rows := c.Rows()
	end := rows[rowForOffset(rows, c.offset)].End
	return c.splice(c.offset, end, nil, c.offset)
}

// DeleteWordBefore deletes back to the start of the previous word.
func (c Cursor) DeleteWordBefore() Cursor {
	start := prevWordBoundary(c.runes, c.offset)
	return c.splice(start, c.offset, nil, start)
}

// DeleteWordAfter deletes forward to the start of the next word.
func (c Cursor) DeleteWordAfter() Cursor {
	end := nextWordBoundary(c.runes, c.offset)
	return c.splice(c.offset, end, nil, c.offset)
}

// NormalizeNewlines converts "\r\n" and lone '\r' to '\n'.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
