package prompt

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kodeline/history"
	"github.com/iw2rmb/kodeline/internal/runeutil"
	"github.com/iw2rmb/kodeline/session"
)

// state is the text and display state behind a Model. It is the session's
// Buffer; session callbacks write here and queue commands for Update.
type state struct {
	value  string
	offset int

	exitKey string
	message string
	images  []string

	cmds []tea.Cmd
}

func (s *state) Value() string         { return s.value }
func (s *state) Offset() int           { return s.offset }
func (s *state) SetValue(value string) { s.value = value }
func (s *state) SetOffset(offset int)  { s.offset = offset }

func (s *state) replace(value string) {
	s.value = value
	s.offset = runeutil.Count(value)
}

func (s *state) emit(msg tea.Msg) {
	s.cmds = append(s.cmds, func() tea.Msg { return msg })
}

func (s *state) takeCmds() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

func (s *state) handlers(hist *history.History) session.Handlers {
	return session.Handlers{
		OnSubmit: func(value string) {
			hist.Add(value)
			images := s.images
			s.images = nil
			s.replace("")
			s.emit(SubmitMsg{Value: value, Images: images})
		},
		OnExit: func() { s.emit(ExitMsg{}) },
		OnExitMessage: func(visible bool, key string) {
			switch {
			case visible:
				s.exitKey = key
			case s.exitKey == key:
				s.exitKey = ""
			}
		},
		OnMessage: func(visible bool, text string) {
			if !visible {
				text = ""
			}
			s.message = text
		},
		OnHistoryUp: func() {
			if v, ok := hist.Up(s.value); ok {
				s.replace(v)
			}
		},
		OnHistoryDown: func() {
			if v, ok := hist.Down(); ok {
				s.replace(v)
			}
		},
		OnHistoryReset: hist.Reset,
		OnImagePaste: func(image string) {
			s.images = append(s.images, image)
		},
	}
}
