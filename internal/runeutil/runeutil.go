// Package runeutil holds the code-point and terminal-cell helpers shared by
// the cursor and prompt packages.
package runeutil

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of code points in text.
func Count(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}

// Slice returns the substring of text covering code points [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	idx := 0
	from, to := len(text), len(text)
	for i := range text {
		if idx == start {
			from = i
		}
		if idx == end {
			to = i
			break
		}
		idx++
	}
	if from >= to {
		return ""
	}
	return text[from:to]
}

// IsSpace reports whether r separates words.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Width returns the number of terminal cells r occupies.
//
// Control characters and zero-width runes report 0.
func Width(r rune) int {
	w := runewidth.RuneWidth(r)
	if w == 0 && !unicode.IsControl(r) {
		w = uniseg.StringWidth(string(r))
	}
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the number of terminal cells text occupies.
func StringWidth(text string) int {
	n := 0
	for _, r := range text {
		n += Width(r)
	}
	return n
}
