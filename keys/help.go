package keys

import "github.com/charmbracelet/bubbles/key"

// Help documents the dispatch table for help views. The bindings are not
// used for matching; Resolve is the single source of dispatch.
type Help struct {
	Submit, Newline           key.Binding
	LineStart, LineEnd        key.Binding
	WordLeft, WordRight       key.Binding
	KillLine, KillWord, Clear key.Binding
	History                   key.Binding
	PasteImage                key.Binding
	ClearInput, Exit          key.Binding
}

func DefaultHelp() Help {
	return Help{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Newline: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp(`\⏎/alt+⏎`, "newline")),

		LineStart: key.NewBinding(key.WithKeys("ctrl+a", "home", "pgup"), key.WithHelp("ctrl+a", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("ctrl+e", "end", "pgdown"), key.WithHelp("ctrl+e", "line end")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt+→", "word right")),

		KillLine: key.NewBinding(key.WithKeys("ctrl+k", "ctrl+u"), key.WithHelp("ctrl+k/u", "kill line")),
		KillWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+d"), key.WithHelp("ctrl+w", "kill word")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		History:    key.NewBinding(key.WithKeys("up", "down", "ctrl+p", "ctrl+n"), key.WithHelp("↑/↓", "history")),
		PasteImage: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste image")),

		ClearInput: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc esc", "clear")),
		Exit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c ×2", "exit")),
	}
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return []key.Binding{h.Submit, h.Newline, h.History, h.PasteImage, h.Exit}
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Submit, h.Newline, h.History},
		{h.LineStart, h.LineEnd, h.WordLeft, h.WordRight},
		{h.KillLine, h.KillWord, h.Clear},
		{h.PasteImage, h.ClearInput, h.Exit},
	}
}
