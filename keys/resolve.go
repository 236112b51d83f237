// Package keys maps terminal key events to line-editing operations.
//
// Resolve is total: any event, including malformed or platform-specific
// combinations, maps to some Op (OpNone when nothing matches).
package keys

import "strings"

// Key carries the modifier and special-key flags of one input event.
type Key struct {
	Ctrl, Meta, Shift bool

	Escape, Return, Tab bool
	Backspace, Delete   bool

	Up, Down, Left, Right bool
	PageUp, PageDown      bool
}

func (k Key) arrow() bool { return k.Up || k.Down || k.Left || k.Right }

func (k Key) navigation() bool { return k.arrow() || k.PageUp || k.PageDown }

// Context is the buffer state Return resolution depends on.
type Context struct {
	Multiline bool

	// PrevRune is the code point before the caret, valid when HasPrev.
	PrevRune rune
	HasPrev  bool
}

// Terminal sequences for Home and End that arrive as plain input.
const (
	SeqHome    = "\x1b[H"
	SeqHomeAlt = "\x1b[1~"
	SeqEnd     = "\x1b[F"
	SeqEndAlt  = "\x1b[4~"
)

// Letter indexes the Ctrl and Meta tables: 0 is 'a', 25 is 'z'.
type Letter int

const noLetter Letter = -1

// LetterOf returns the table index for single-letter input.
func LetterOf(input string) Letter {
	if len(input) != 1 {
		return noLetter
	}
	c := input[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return noLetter
	}
	return Letter(c - 'a')
}

var ctrlOps = [26]Op{
	'a' - 'a': OpStartOfLine,
	'b' - 'a': OpLeft,
	'c' - 'a': OpCtrlC,
	'd' - 'a': OpCtrlD,
	'e' - 'a': OpEndOfLine,
	'f' - 'a': OpRight,
	'h' - 'a': OpBackspace,
	'k' - 'a': OpDeleteToLineEnd,
	'l' - 'a': OpClear,
	'n' - 'a': OpDown,
	'p' - 'a': OpUp,
	'u' - 'a': OpDeleteToLineStart,
	'v' - 'a': OpPasteImage,
	'w' - 'a': OpDeleteWordBefore,
}

var metaOps = [26]Op{
	'b' - 'a': OpPrevWord,
	'd' - 'a': OpDeleteWordAfter,
	'f' - 'a': OpNextWord,
}

// CtrlOp returns the Ctrl table entry for l (OpNone when unmapped).
func CtrlOp(l Letter) Op { return lookup(&ctrlOps, l) }

// MetaOp returns the Meta table entry for l (OpNone when unmapped).
func MetaOp(l Letter) Op { return lookup(&metaOps, l) }

func lookup(table *[26]Op, l Letter) Op {
	if l < 0 || int(l) >= len(table) {
		return OpNone
	}
	return table[l]
}

// IsBackspaceInput reports whether input is a literal backspace control
// character (BS or DEL).
func IsBackspaceInput(input string) bool {
	return input == "\b" || input == "\x7f"
}

// Resolve maps one input event to an Op. First match wins.
func Resolve(input string, k Key, ctx Context) Op {
	switch {
	case k.Tab:
		return OpIgnore
	case k.Backspace || IsBackspaceInput(input):
		return OpBackspace
	case k.Delete:
		return OpDelete
	case isPrintable(input, k):
		return OpInsert
	case k.Escape:
		return OpEscape
	case k.Left && (k.Ctrl || k.Meta):
		return OpPrevWord
	case k.Right && (k.Ctrl || k.Meta):
		return OpNextWord
	case k.Ctrl:
		return CtrlOp(LetterOf(input))
	case k.Meta && !k.Return:
		return MetaOp(LetterOf(input))
	case k.Return:
		return resolveReturn(k, ctx)
	case k.PageUp:
		return OpStartOfLine
	case k.PageDown:
		return OpEndOfLine
	case k.Up:
		return OpUp
	case k.Down:
		return OpDown
	case k.Left:
		return OpLeft
	case k.Right:
		return OpRight
	case input == SeqHome || input == SeqHomeAlt:
		return OpStartOfLine
	case input == SeqEnd || input == SeqEndAlt:
		return OpEndOfLine
	}
	return OpNone
}

// isPrintable accepts typed, pasted and IME text, including multi-rune
// bursts. Escape sequences and navigation keys never count.
func isPrintable(input string, k Key) bool {
	if input == "" || k.Ctrl || k.Meta || k.Escape || k.Return || k.navigation() {
		return false
	}
	return !strings.HasPrefix(input, "\x1b")
}

func resolveReturn(k Key, ctx Context) Op {
	if ctx.Multiline && ctx.HasPrev && ctx.PrevRune == '\\' {
		return OpLineContinuation
	}
	if k.Meta {
		return OpNewline
	}
	return OpSubmit
}
