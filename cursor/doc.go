// Package cursor implements the pure text-plus-caret value used by the prompt
// line editor.
//
// A Cursor is immutable: every motion or edit returns a new Cursor. Offsets
// count code points, never bytes. Visual rows are computed by soft-wrapping
// each logical line at the configured column width (in terminal cells).
package cursor
