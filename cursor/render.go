package cursor

import "strings"

// DefaultCursorChar is drawn (inverted) when the caret sits past the last
// character of a line.
const DefaultCursorChar = " "

// Render produces the display string with the caret marked.
//
// When mask is set every character except '\n' is replaced by it. The
// character under the caret is passed through invert; at the end of a line
// cursorChar is inverted instead. A nil invert leaves text unchanged.
func (c Cursor) Render(cursorChar, mask string, invert func(string) string) string {
	cursorChar, invert = renderDefaults(cursorChar, invert)

	var sb strings.Builder
	for i := range c.runes {
		c.writeRune(&sb, i, i == c.offset, cursorChar, mask, invert)
	}
	if c.offset == len(c.runes) {
		sb.WriteString(invert(cursorChar))
	}
	return sb.String()
}

// RenderRows is Render split into the visual rows used for motion, so a
// renderer that draws one row per line stays in step with Up and Down.
func (c Cursor) RenderRows(cursorChar, mask string, invert func(string) string) []string {
	cursorChar, invert = renderDefaults(cursorChar, invert)

	rows := c.Rows()
	caretRow := rowForOffset(rows, c.offset)
	out := make([]string, 0, len(rows))
	for ri, row := range rows {
		if ri != caretRow && isTrailingCaretRow(rows, ri) {
			continue
		}
		var sb strings.Builder
		for i := row.Start; i < row.End; i++ {
			c.writeRune(&sb, i, ri == caretRow && i == c.offset, cursorChar, mask, invert)
		}
		if ri == caretRow && c.offset == row.End {
			sb.WriteString(invert(cursorChar))
		}
		out = append(out, sb.String())
	}
	return out
}

// isTrailingCaretRow reports whether rows[i] is the empty row that only
// exists to hold a caret after a full last row.
func isTrailingCaretRow(rows []Row, i int) bool {
	return i > 0 && i == len(rows)-1 && rows[i].Start == rows[i].End && rows[i-1].Soft
}

func (c Cursor) writeRune(sb *strings.Builder, i int, caret bool, cursorChar, mask string, invert func(string) string) {
	r := c.runes[i]
	if r == '\n' {
		if caret {
			sb.WriteString(invert(cursorChar))
		}
		sb.WriteByte('\n')
		return
	}
	ch := string(r)
	if mask != "" {
		ch = mask
	}
	if caret {
		ch = invert(ch)
	}
	sb.WriteString(ch)
}

func renderDefaults(cursorChar string, invert func(string) string) (string, func(string) string) {
	if cursorChar == "" {
		cursorChar = DefaultCursorChar
	}
	if invert == nil {
		invert = func(s string) string { return s }
	}
	return cursorChar, invert
}
