package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/history"
	"github.com/iw2rmb/kodeline/prompt"
)

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) ReadImage(context.Context) (string, error) { return "", clipboard.ErrNoImage }

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func newTestApp(clip clipboard.Clipboard, historyFile string) app {
	a := newApp(prompt.Config{Platform: "linux"}, clip, historyFile, nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	return m.(app)
}

func step(a app, msg tea.Msg) (app, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(app), cmd
}

// submit types s, presses Enter and feeds the resulting messages back.
func submit(t *testing.T, a app, s string) app {
	t.Helper()
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	a, cmd := step(a, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should emit a submit command")
	}
	a, _ = step(a, cmd())
	return a
}

func TestApp_SubmitAppendsToTranscript(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.yaml")
	a := newTestApp(&memClipboard{}, file)

	a = submit(t, a, "hello")
	a = submit(t, a, "world")

	if diff := cmp.Diff([]string{"> hello", "> world"}, a.entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if got := a.prompt.Value(); got != "" {
		t.Fatalf("prompt should clear after submit, got %q", got)
	}
	if v := a.View(); !strings.Contains(v, "> world") {
		t.Fatalf("view should show the transcript: %q", v)
	}

	h, err := history.Load(file, 0)
	if err != nil {
		t.Fatalf("history Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"hello", "world"}, h.Entries()); diff != "" {
		t.Fatalf("saved history mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_CopyLastSubmission(t *testing.T) {
	clip := &memClipboard{}
	a := newTestApp(clip, "")

	a, _ = step(a, tea.KeyMsg{Type: tea.KeyCtrlY})
	if a.banner != "Nothing to copy yet" {
		t.Fatalf("banner: got %q", a.banner)
	}

	a = submit(t, a, "copy me")
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyCtrlY})
	if clip.text != "copy me" {
		t.Fatalf("clipboard: got %q, want %q", clip.text, "copy me")
	}
	if !strings.Contains(a.View(), "Copied last prompt") {
		t.Fatalf("view should show the copy banner: %q", a.View())
	}

	// Any key dismisses the banner.
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.banner != "" {
		t.Fatalf("banner should clear on the next key, got %q", a.banner)
	}

	clip.err = errors.New("no display")
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyCtrlY})
	if a.banner != "Copy failed" {
		t.Fatalf("banner: got %q, want %q", a.banner, "Copy failed")
	}
}

func TestApp_TabMovesFocus(t *testing.T) {
	a := newTestApp(nil, "")

	a, _ = step(a, tea.KeyMsg{Type: tea.KeyTab})
	if a.prompt.Focused() {
		t.Fatalf("tab should move focus to the transcript")
	}
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := a.prompt.Value(); got != "" {
		t.Fatalf("blurred prompt should ignore typing, got %q", got)
	}

	a, _ = step(a, tea.KeyMsg{Type: tea.KeyTab})
	if !a.prompt.Focused() {
		t.Fatalf("second tab should return focus to the prompt")
	}
	a, _ = step(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := a.prompt.Value(); got != "x" {
		t.Fatalf("prompt value: got %q, want %q", got, "x")
	}
}

func TestApp_DoubleCtrlDQuits(t *testing.T) {
	a := newTestApp(nil, "")

	a, _ = step(a, tea.KeyMsg{Type: tea.KeyCtrlD})
	if !strings.Contains(a.View(), "Press Ctrl-D again to exit") {
		t.Fatalf("view should show the exit hint: %q", a.View())
	}

	a, cmd := step(a, tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd == nil {
		t.Fatalf("second ctrl+d should emit an exit command")
	}
	msg := cmd()
	if _, ok := msg.(prompt.ExitMsg); !ok {
		t.Fatalf("got %T, want prompt.ExitMsg", msg)
	}

	_, cmd = step(a, msg)
	if cmd == nil {
		t.Fatalf("exit should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("exit should return tea.Quit")
	}
	a.prompt.Close()
}
