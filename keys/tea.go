package keys

import tea "github.com/charmbracelet/bubbletea"

// FromTea converts a Bubble Tea key message into raw input plus flags.
//
// Home and End are reported as their escape sequences so they resolve the
// same way as terminals that deliver them as plain input.
func FromTea(msg tea.KeyMsg) (string, Key) {
	k := Key{Meta: msg.Alt}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			// Pasted text is always literal, even with a stray Alt flag.
			return string(msg.Runes), Key{}
		}
		return string(msg.Runes), k
	case tea.KeySpace:
		return " ", k
	case tea.KeyEnter:
		k.Return = true
		return "\r", k
	case tea.KeyTab:
		k.Tab = true
		return "\t", k
	case tea.KeyShiftTab:
		k.Tab, k.Shift = true, true
		return "", k
	case tea.KeyBackspace:
		k.Backspace = true
		return "", k
	case tea.KeyDelete:
		k.Delete = true
		return "", k
	case tea.KeyEscape:
		k.Escape = true
		return "", k

	case tea.KeyUp:
		k.Up = true
	case tea.KeyDown:
		k.Down = true
	case tea.KeyLeft:
		k.Left = true
	case tea.KeyRight:
		k.Right = true
	case tea.KeyShiftUp:
		k.Up, k.Shift = true, true
	case tea.KeyShiftDown:
		k.Down, k.Shift = true, true
	case tea.KeyShiftLeft:
		k.Left, k.Shift = true, true
	case tea.KeyShiftRight:
		k.Right, k.Shift = true, true
	case tea.KeyCtrlUp:
		k.Up, k.Ctrl = true, true
	case tea.KeyCtrlDown:
		k.Down, k.Ctrl = true, true
	case tea.KeyCtrlLeft:
		k.Left, k.Ctrl = true, true
	case tea.KeyCtrlRight:
		k.Right, k.Ctrl = true, true
	case tea.KeyPgUp:
		k.PageUp = true
	case tea.KeyPgDown:
		k.PageDown = true

	case tea.KeyHome:
		return SeqHome, k
	case tea.KeyEnd:
		return SeqEnd, k

	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			k.Ctrl = true
			return string(rune('a' + int(msg.Type-tea.KeyCtrlA))), k
		}
	}
	return "", k
}
