// Package prompt is a Bubble Tea component hosting a line-editing session:
// the "> " input line of a terminal assistant with history, image paste and
// double-press exit.
package prompt

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/cursor"
	"github.com/iw2rmb/kodeline/history"
	"github.com/iw2rmb/kodeline/internal/runeutil"
	"github.com/iw2rmb/kodeline/keys"
	"github.com/iw2rmb/kodeline/session"
)

const (
	promptPrefix       = "> "
	continuationPrefix = "  "
)

// SubmitMsg is emitted when Return submits the input. The prompt clears
// itself and records Value in history before emitting it.
type SubmitMsg struct {
	Value string
	// Images holds the base64 PNGs pasted since the last submit, in paste
	// order. Each has a placeholder in Value.
	Images []string
}

// ExitMsg is emitted when an exit key is confirmed.
type ExitMsg struct{}

// Config configures the prompt Model.
type Config struct {
	// Initial text; the caret starts at its end.
	Text string

	// Width is the total render width including the prompt prefix. Zero
	// disables wrapping until a tea.WindowSizeMsg arrives.
	Width int

	Multiline                          bool
	Mask                               string
	DisableCursorMovementForUpDownKeys bool

	DoublePressWindow time.Duration
	MessageTimeout    time.Duration

	// ClipboardTimeout bounds a Ctrl-V image read.
	ClipboardTimeout time.Duration

	// Platform and Clipboard are forwarded to the session.
	Platform  string
	Clipboard clipboard.ImageReader

	// History defaults to an empty in-memory history.
	History *history.History

	Styles Styles
	Logger *zap.Logger
}

// Model is the prompt component. Copies share the same underlying input
// state.
type Model struct {
	cfg   Config
	st    *state
	sess  *session.Session
	sched *TickScheduler
	hist  *history.History

	focused bool
	width   int
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	hist := cfg.History
	if hist == nil {
		hist = history.New(0)
	}

	st := &state{value: cfg.Text, offset: runeutil.Count(cfg.Text)}
	m := Model{
		cfg:     cfg,
		st:      st,
		sched:   NewTickScheduler(),
		hist:    hist,
		focused: true,
		width:   cfg.Width,
	}

	cursorStyle := cfg.Styles.Cursor
	m.sess = session.New(st, session.Config{
		Columns:                            columnsFor(cfg.Width),
		Multiline:                          cfg.Multiline,
		Mask:                               cfg.Mask,
		Invert:                             func(s string) string { return cursorStyle.Render(s) },
		DisableCursorMovementForUpDownKeys: cfg.DisableCursorMovementForUpDownKeys,
		DoublePressWindow:                  cfg.DoublePressWindow,
		MessageTimeout:                     cfg.MessageTimeout,
		ClipboardTimeout:                   cfg.ClipboardTimeout,
		Platform:                           cfg.Platform,
		Clipboard:                          cfg.Clipboard,
		Scheduler:                          m.sched,
		Logger:                             cfg.Logger.Named("session"),
	}, st.handlers(hist))
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the current input.
func (m Model) Value() string { return m.st.value }

// Offset returns the caret position in code points.
func (m Model) Offset() int { return m.st.offset }

// SetValue replaces the input and moves the caret to its end.
func (m Model) SetValue(value string) Model {
	m.st.SetValue(value)
	m.st.SetOffset(runeutil.Count(value))
	return m
}

func (m Model) History() *history.History { return m.hist }

// Attachments returns the images pasted since the last submit.
func (m Model) Attachments() []string {
	return append([]string(nil), m.st.images...)
}

// Message returns the visible transient message, or "".
func (m Model) Message() string { return m.st.message }

// ExitHint returns the visible "press again to exit" hint, or "".
func (m Model) ExitHint() string {
	if m.st.exitKey == "" {
		return ""
	}
	return fmt.Sprintf("Press %s again to exit", m.st.exitKey)
}

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.sess.SetColumns(columnsFor(width))
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Close cancels pending timers. Call it when the prompt is discarded.
func (m Model) Close() { m.sess.Close() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetWidth(msg.Width)
	case tea.KeyMsg:
		if m.focused {
			input, k := keys.FromTea(msg)
			m.sess.OnInput(input, k)
		}
	case timerFiredMsg:
		m.sched.Fire(msg)
	}
	return m, m.flush()
}

func (m Model) flush() tea.Cmd {
	cmds := m.st.takeCmds()
	cmds = append(cmds, m.sched.Flush())
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	var rows []string
	if m.focused {
		rows = m.sess.RenderedRows()
	} else {
		rows = m.plainRows()
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(m.cfg.Styles.Prompt.Render(continuationPrefix))
		} else {
			sb.WriteString(m.cfg.Styles.Prompt.Render(promptPrefix))
		}
		sb.WriteString(row)
	}

	if hint := m.ExitHint(); hint != "" {
		sb.WriteByte('\n')
		sb.WriteString(m.cfg.Styles.Hint.Render(hint))
	} else if m.st.message != "" {
		sb.WriteByte('\n')
		sb.WriteString(m.cfg.Styles.Message.Render(m.st.message))
	}
	return sb.String()
}

// plainRows renders the wrapped input without a caret.
func (m Model) plainRows() []string {
	c := cursor.New(m.st.value, m.sess.Columns(), m.st.offset)
	rows := c.Rows()
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		if i > 0 && row.Start == row.End && rows[i-1].Soft {
			continue
		}
		text := runeutil.Slice(m.st.value, row.Start, row.End)
		if m.cfg.Mask != "" {
			text = strings.Repeat(m.cfg.Mask, row.End-row.Start)
		}
		out = append(out, text)
	}
	return out
}

func columnsFor(width int) int {
	if width <= 0 {
		return 0
	}
	return max(width-runeutil.StringWidth(promptPrefix), 1)
}
