package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/keys"
	"github.com/iw2rmb/kodeline/prompt"
)

const (
	focusPrompt     = "prompt"
	focusTranscript = "transcript"
)

var (
	transcriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bannerStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// app hosts the prompt under a transcript of submitted lines.
type app struct {
	prompt     prompt.Model
	transcript viewport.Model
	help       help.Model
	keys       keys.Help
	focus      prompt.FocusRing

	clip        clipboard.Clipboard
	historyFile string
	log         *zap.Logger

	entries []string
	last    string
	banner  string

	width, height int
}

func newApp(cfg prompt.Config, clip clipboard.Clipboard, historyFile string, log *zap.Logger) app {
	if log == nil {
		log = zap.NewNop()
	}
	return app{
		prompt:      prompt.New(cfg),
		transcript:  viewport.New(0, 0),
		help:        help.New(),
		keys:        keys.DefaultHelp(),
		focus:       prompt.NewFocusRing(focusPrompt, focusTranscript),
		clip:        clip,
		historyFile: historyFile,
		log:         log,
	}
}

func (a app) Init() tea.Cmd { return a.prompt.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.transcript.Width = msg.Width
		a.prompt = a.prompt.SetWidth(msg.Width)
		a.layout()
		return a, nil

	case tea.KeyMsg:
		a.banner = ""
		switch msg.String() {
		case "tab", "shift+tab":
			if msg.String() == "tab" {
				a.focus = a.focus.Next()
			} else {
				a.focus = a.focus.Prev()
			}
			if a.focus.Is(focusPrompt) {
				a.prompt = a.prompt.Focus()
			} else {
				a.prompt = a.prompt.Blur()
			}
			return a, nil
		case "ctrl+y":
			a.copyLast()
			return a, nil
		}
		if a.focus.Is(focusTranscript) {
			return a.updateTranscript(msg)
		}

	case prompt.SubmitMsg:
		a.appendEntry(msg)
		return a, nil

	case prompt.ExitMsg:
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	a.layout()
	return a, cmd
}

func (a app) updateTranscript(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return a, nil
	case "q", "ctrl+c":
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.transcript, cmd = a.transcript.Update(msg)
	return a, cmd
}

func (a *app) appendEntry(msg prompt.SubmitMsg) {
	entry := "> " + msg.Value
	if n := len(msg.Images); n > 0 {
		entry += fmt.Sprintf("  (%d image%s)", n, plural(n))
	}
	a.entries = append(a.entries, entry)
	a.last = msg.Value
	a.log.Debug("submitted", zap.Int("len", len(msg.Value)), zap.Int("images", len(msg.Images)))

	a.transcript.SetContent(transcriptStyle.Render(strings.Join(a.entries, "\n")))
	a.transcript.GotoBottom()

	if a.historyFile != "" {
		if err := a.prompt.History().Save(a.historyFile); err != nil {
			a.log.Warn("history not saved", zap.Error(err))
		}
	}
}

func (a *app) copyLast() {
	switch {
	case a.last == "":
		a.banner = "Nothing to copy yet"
	case a.clip == nil:
		a.banner = "Clipboard unavailable"
	default:
		if err := a.clip.WriteText(a.last); err != nil {
			a.log.Warn("copy failed", zap.Error(err))
			a.banner = "Copy failed"
			return
		}
		a.banner = "Copied last prompt"
	}
}

// layout gives the transcript whatever height the prompt and help leave.
func (a *app) layout() {
	used := lipgloss.Height(a.prompt.View()) + lipgloss.Height(a.help.View(a.keys))
	a.transcript.Height = max(a.height-used, 0)
}

func (a app) View() string {
	body := a.transcript.View()
	if a.banner != "" && a.transcript.Height > 0 {
		body = overlay.Composite(bannerStyle.Render(a.banner), body, overlay.Right, overlay.Top, 0, 0)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.prompt.View(), a.help.View(a.keys))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
