package cursor

import "github.com/iw2rmb/kodeline/internal/runeutil"

// Row is one visual row: code points [Start, End) of the text.
//
// Soft rows end at a wrap boundary and continue on the next row; the offset
// End of a soft row belongs to the start of the next row. Hard rows end at a
// '\n' (excluded from the row) or at the end of the text.
type Row struct {
	Start int
	End   int
	Width int
	Soft  bool
}

// Rows returns the visual rows of the text at the Cursor's wrap width.
func (c Cursor) Rows() []Row {
	return wrapRows(c.runes, c.columns)
}

// Position returns the caret's visual row index and cell column.
func (c Cursor) Position() (row, col int) {
	rows := c.Rows()
	row = rowForOffset(rows, c.offset)
	return row, cellsBetween(c.runes, rows[row].Start, c.offset)
}

func wrapRows(runes []rune, columns int) []Row {
	rows := make([]Row, 0, 1)
	start, width := 0, 0
	for i, r := range runes {
		if r == '\n' {
			rows = append(rows, Row{Start: start, End: i, Width: width})
			start, width = i+1, 0
			continue
		}
		w := runeutil.Width(r)
		if columns > 0 && width > 0 && width+w > columns {
			rows = append(rows, Row{Start: start, End: i, Width: width, Soft: true})
			start, width = i, 0
		}
		width += w
	}
	rows = append(rows, Row{Start: start, End: len(runes), Width: width})

	// A caret after a full last row is drawn on a fresh row.
	last := &rows[len(rows)-1]
	if columns > 0 && last.End > last.Start && last.Width >= columns {
		last.Soft = true
		rows = append(rows, Row{Start: len(runes), End: len(runes)})
	}
	return rows
}

func rowForOffset(rows []Row, offset int) int {
	for i, r := range rows {
		if offset < r.End || (offset == r.End && !r.Soft) {
			return i
		}
	}
	return len(rows) - 1
}

func cellsBetween(runes []rune, start, end int) int {
	n := 0
	for i := start; i < end && i < len(runes); i++ {
		n += runeutil.Width(runes[i])
	}
	return n
}

// offsetInRow maps a cell column inside row to the offset of the rune
// covering it. Columns past the row's width land on the last offset that
// still belongs to the row.
func offsetInRow(runes []rune, row Row, col int) int {
	used := 0
	for i := row.Start; i < row.End; i++ {
		w := runeutil.Width(runes[i])
		if used+w > col {
			return i
		}
		used += w
	}
	return rowEndOffset(row)
}

// rowEndOffset is the last caret position still drawn on row.
func rowEndOffset(row Row) int {
	if row.Soft && row.End > row.Start {
		return row.End - 1
	}
	return row.End
}
