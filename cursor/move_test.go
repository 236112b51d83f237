package cursor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_ClampsOffset(t *testing.T) {
	if got := New("abc", 80, -4).Offset(); got != 0 {
		t.Fatalf("offset: got %d, want %d", got, 0)
	}
	if got := New("abc", 80, 99).Offset(); got != 3 {
		t.Fatalf("offset: got %d, want %d", got, 3)
	}
	if got := New("日本", 80, 99).Offset(); got != 2 {
		t.Fatalf("offset counts code points: got %d, want %d", got, 2)
	}
}

func TestNew_ReplacesInvalidUTF8(t *testing.T) {
	c := New("a\xffb", 80, 3)
	if got, want := c.Text(), "a\uFFFDb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := c.Right(); !got.Equals(c) {
		t.Fatalf("right at end must be identity: got %v", got)
	}
	if got, want := c.Insert("c").Text(), "a\uFFFDbc"; got != want {
		t.Fatalf("text after insert: got %q, want %q", got, want)
	}
}

func TestLeftRight_Bounds(t *testing.T) {
	c := New("ab", 80, 0)
	if got := c.Left(); !got.Equals(c) {
		t.Fatalf("left at start: got %v, want %v", got, c)
	}

	c = c.Right().Right()
	if got := c.Offset(); got != 2 {
		t.Fatalf("offset after two rights: got %d, want %d", got, 2)
	}
	if got := c.Right(); !got.Equals(c) {
		t.Fatalf("right at end: got %v, want %v", got, c)
	}
}

func TestLeftRight_WideRunesAreSingleUnits(t *testing.T) {
	c := New("a日😀b", 80, 0)
	c = c.Right().Right()
	if got := c.Offset(); got != 2 {
		t.Fatalf("offset: got %d, want %d", got, 2)
	}
	if got := c.Right().Offset(); got != 3 {
		t.Fatalf("offset past emoji: got %d, want %d", got, 3)
	}
	if got := c.Del().Text(); got != "a日b" {
		t.Fatalf("del emoji: got %q, want %q", got, "a日b")
	}
}

func TestWordMotion(t *testing.T) {
	c := New("foo  bar baz", 80, 0)

	c = c.NextWord()
	if got := c.Offset(); got != 5 {
		t.Fatalf("first nextWord: got %d, want %d", got, 5)
	}
	c = c.NextWord()
	if got := c.Offset(); got != 9 {
		t.Fatalf("second nextWord: got %d, want %d", got, 9)
	}
	c = c.NextWord()
	if got := c.Offset(); got != 12 {
		t.Fatalf("nextWord at last word clamps to end: got %d, want %d", got, 12)
	}
	if got := c.NextWord(); !got.Equals(c) {
		t.Fatalf("nextWord at end: got %v, want %v", got, c)
	}

	c = New("foo  bar baz", 80, 12).PrevWord()
	if got := c.Offset(); got != 9 {
		t.Fatalf("prevWord from end: got %d, want %d", got, 9)
	}
	c = c.PrevWord().PrevWord()
	if got := c.Offset(); got != 0 {
		t.Fatalf("prevWord to start: got %d, want %d", got, 0)
	}
	if got := c.PrevWord(); !got.Equals(c) {
		t.Fatalf("prevWord at start: got %v, want %v", got, c)
	}
}

func TestWordMotion_CrossesNewlines(t *testing.T) {
	c := New("one\n  two", 80, 0).NextWord()
	if got := c.Offset(); got != 6 {
		t.Fatalf("nextWord across newline: got %d, want %d", got, 6)
	}
	if got := c.PrevWord().Offset(); got != 0 {
		t.Fatalf("prevWord across newline: got %d, want %d", got, 0)
	}
}

func TestUpDown_HardLines(t *testing.T) {
	c := New("hello\nw\nworld", 80, 12)

	c = c.Up()
	if got := c.Offset(); got != 7 {
		t.Fatalf("up into short line clamps to its end: got %d, want %d", got, 7)
	}
	c = c.Up()
	if got := c.Offset(); got != 1 {
		t.Fatalf("up to first line: got %d, want %d", got, 1)
	}
	if got := c.Up(); !got.Equals(c) {
		t.Fatalf("up on first row must be identity: got %v", got)
	}

	c = New("hello\nw\nworld", 80, 3).Down().Down()
	if got := c.Offset(); got != 9 {
		t.Fatalf("down twice: got %d, want %d", got, 9)
	}
	if got := c.Down(); !got.Equals(c) {
		t.Fatalf("down on last row must be identity: got %v", got)
	}
}

func TestUpDown_SoftWrap(t *testing.T) {
	c := New("abcdef", 3, 1)

	c = c.Down()
	if got := c.Offset(); got != 4 {
		t.Fatalf("down into wrapped row: got %d, want %d", got, 4)
	}
	c = c.Down()
	if got := c.Offset(); got != 6 {
		t.Fatalf("down onto trailing caret row: got %d, want %d", got, 6)
	}
	if got := c.Down(); !got.Equals(c) {
		t.Fatalf("down on last row must be identity: got %v", got)
	}

	c = c.Up()
	if got := c.Offset(); got != 3 {
		t.Fatalf("up from trailing caret row: got %d, want %d", got, 3)
	}
	c = c.Up()
	if got := c.Offset(); got != 0 {
		t.Fatalf("up to first row: got %d, want %d", got, 0)
	}
	if got := c.Up(); !got.Equals(c) {
		t.Fatalf("up on first row must be identity: got %v", got)
	}
}

func TestUpDown_WideRunesKeepCellColumn(t *testing.T) {
	// Rows: "ab日" (4 cells), "日cd".
	c := New("ab日日cd", 4, 5)

	row, col := c.Position()
	if row != 1 || col != 3 {
		t.Fatalf("position: got (%d,%d), want (1,3)", row, col)
	}

	c = c.Up()
	if got := c.Offset(); got != 2 {
		t.Fatalf("up lands on wide rune covering the column: got %d, want %d", got, 2)
	}

	c = New("ab日日cd", 4, 1).Down()
	if got := c.Offset(); got != 3 {
		t.Fatalf("down into wide rune: got %d, want %d", got, 3)
	}
}

func TestRows(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		columns int
		want    []Row
	}{
		{
			name:    "empty",
			text:    "",
			columns: 4,
			want:    []Row{{Start: 0, End: 0}},
		},
		{
			name:    "hard breaks",
			text:    "ab\n\ncd",
			columns: 4,
			want: []Row{
				{Start: 0, End: 2, Width: 2},
				{Start: 3, End: 3},
				{Start: 4, End: 6, Width: 2},
			},
		},
		{
			name:    "soft wrap with trailing caret row",
			text:    "abcdef",
			columns: 3,
			want: []Row{
				{Start: 0, End: 3, Width: 3, Soft: true},
				{Start: 3, End: 6, Width: 3, Soft: true},
				{Start: 6, End: 6},
			},
		},
		{
			name:    "wide rune does not split",
			text:    "a日b",
			columns: 2,
			want: []Row{
				{Start: 0, End: 1, Width: 1, Soft: true},
				{Start: 1, End: 2, Width: 2, Soft: true},
				{Start: 2, End: 3, Width: 1},
			},
		},
		{
			name:    "no wrap",
			text:    "abcdef",
			columns: 0,
			want:    []Row{{Start: 0, End: 6, Width: 6}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.text, tc.columns, 0).Rows()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStartEndOfLine_VisualRows(t *testing.T) {
	// Rows: "abc" (soft), "def", "xy".
	c := New("abcdef\nxy", 3, 1)
	if got := c.StartOfLine().Offset(); got != 0 {
		t.Fatalf("start of soft row: got %d, want %d", got, 0)
	}
	if got := c.EndOfLine().Offset(); got != 2 {
		t.Fatalf("end of soft row stays on row: got %d, want %d", got, 2)
	}

	c = New("abcdef\nxy", 3, 4)
	if got := c.StartOfLine().Offset(); got != 3 {
		t.Fatalf("start of wrapped row: got %d, want %d", got, 3)
	}
	if got := c.EndOfLine().Offset(); got != 6 {
		t.Fatalf("end of row before newline: got %d, want %d", got, 6)
	}

	c = New("abcdef\nxy", 3, 8)
	if got := c.StartOfLine().Offset(); got != 7 {
		t.Fatalf("start of logical line: got %d, want %d", got, 7)
	}
	if got := c.EndOfLine().Offset(); got != 9 {
		t.Fatalf("end of last line: got %d, want %d", got, 9)
	}

	e := New("", 3, 0)
	if !e.StartOfLine().Equals(e) || !e.EndOfLine().Equals(e) {
		t.Fatalf("line motion on empty buffer must be identity")
	}
}
