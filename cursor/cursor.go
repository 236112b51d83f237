package cursor

import "strings"

// Cursor is a text buffer with a caret offset and a wrap width.
type Cursor struct {
	text    string
	runes   []rune
	offset  int
	columns int
}

// New builds a Cursor over text. Invalid UTF-8 is replaced with U+FFFD up
// front. The offset is clamped into [0, len(runes)]; columns <= 0 disables
// soft wrapping.
func New(text string, columns, offset int) Cursor {
	return fromRunes([]rune(text), columns, offset)
}

func fromRunes(runes []rune, columns, offset int) Cursor {
	return Cursor{
		text:    string(runes),
		runes:   runes,
		offset:  clampInt(offset, 0, len(runes)),
		columns: columns,
	}
}

func (c Cursor) Text() string { return c.text }

func (c Cursor) Offset() int { return c.offset }

func (c Cursor) Columns() int { return c.columns }

// Len returns the text length in code points.
func (c Cursor) Len() int { return len(c.runes) }

// IsEmpty reports whether the buffer holds no text.
func (c Cursor) IsEmpty() bool { return len(c.runes) == 0 }

// RuneBefore returns the code point immediately before the caret.
func (c Cursor) RuneBefore() (rune, bool) {
	if c.offset == 0 {
		return 0, false
	}
	return c.runes[c.offset-1], true
}

// Equals reports structural equality on text and offset.
//
// Motions that could not move (Up on the first row, Down on the last) return
// a Cursor equal to the receiver.
func (c Cursor) Equals(other Cursor) bool {
	return c.offset == other.offset && c.text == other.text
}

// Clear returns an empty Cursor with the same wrap width.
func (c Cursor) Clear() Cursor {
	return New("", c.columns, 0)
}

// withOffset moves the caret without touching the text.
func (c Cursor) withOffset(offset int) Cursor {
	c.offset = clampInt(offset, 0, len(c.runes))
	return c
}

// splice replaces runes [start, end) with ins and places the caret at
// caret (an offset into the new text).
func (c Cursor) splice(start, end int, ins []rune, caret int) Cursor {
	start = clampInt(start, 0, len(c.runes))
	end = clampInt(end, start, len(c.runes))
	if start == end && len(ins) == 0 {
		return c.withOffset(caret)
	}

	next := make([]rune, 0, len(c.runes)-(end-start)+len(ins))
	next = append(next, c.runes[:start]...)
	next = append(next, ins...)
	next = append(next, c.runes[end:]...)
	return fromRunes(next, c.columns, caret)
}

// String renders the text with a '|' at the caret (debug form).
func (c Cursor) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.runes[:c.offset]))
	sb.WriteByte('|')
	sb.WriteString(string(c.runes[c.offset:]))
	return sb.String()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
