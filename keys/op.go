package keys

// Op is the action a key event resolves to.
type Op int

const (
	// OpNone leaves the buffer unchanged.
	OpNone Op = iota
	// OpIgnore marks keys owned by another subsystem (Tab completion).
	OpIgnore

	OpInsert
	OpBackspace
	OpDelete

	OpLeft
	OpRight
	// OpUp and OpDown fall back to history when the caret cannot move.
	OpUp
	OpDown
	OpStartOfLine
	OpEndOfLine
	OpPrevWord
	OpNextWord

	OpDeleteToLineStart
	OpDeleteToLineEnd
	OpDeleteWordBefore
	OpDeleteWordAfter
	OpClear

	OpCtrlC
	OpCtrlD
	OpEscape
	OpPasteImage

	OpSubmit
	OpNewline
	// OpLineContinuation replaces a backslash before the caret with '\n'.
	OpLineContinuation
)

var opNames = [...]string{
	OpNone:              "none",
	OpIgnore:            "ignore",
	OpInsert:            "insert",
	OpBackspace:         "backspace",
	OpDelete:            "delete",
	OpLeft:              "left",
	OpRight:             "right",
	OpUp:                "up",
	OpDown:              "down",
	OpStartOfLine:       "start-of-line",
	OpEndOfLine:         "end-of-line",
	OpPrevWord:          "prev-word",
	OpNextWord:          "next-word",
	OpDeleteToLineStart: "delete-to-line-start",
	OpDeleteToLineEnd:   "delete-to-line-end",
	OpDeleteWordBefore:  "delete-word-before",
	OpDeleteWordAfter:   "delete-word-after",
	OpClear:             "clear",
	OpCtrlC:             "ctrl-c",
	OpCtrlD:             "ctrl-d",
	OpEscape:            "escape",
	OpPasteImage:        "paste-image",
	OpSubmit:            "submit",
	OpNewline:           "newline",
	OpLineContinuation:  "line-continuation",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}
