package session

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/gate"
)

const (
	// ImagePlaceholder is inserted when an image is pasted from the clipboard.
	ImagePlaceholder = "[Image pasted]"

	// EscapeHint is shown after the first Escape on a non-empty buffer.
	EscapeHint = "Press Escape again to clear"

	DefaultMessageTimeout   = 4 * time.Second
	DefaultClipboardTimeout = 2 * time.Second
)

// Buffer is the text state owned by the host. The session reads it before
// every operation and writes results back through the setters, text first.
type Buffer interface {
	Value() string
	Offset() int
	SetValue(value string)
	SetOffset(offset int)
}

// Handlers are the host callbacks. Any of them may be nil; a nil handler
// is a no-op.
type Handlers struct {
	// OnSubmit receives the buffer when Return submits.
	OnSubmit func(value string)
	// OnExit runs when Ctrl-C or Ctrl-D (on an empty buffer) is confirmed.
	OnExit func()
	// OnExitMessage shows or hides the "press again to exit" hint for key
	// ("Ctrl-C" or "Ctrl-D").
	OnExitMessage func(visible bool, key string)
	// OnMessage shows or hides a transient banner.
	OnMessage func(visible bool, text string)

	OnHistoryUp    func()
	OnHistoryDown  func()
	OnHistoryReset func()

	// OnImagePaste receives the base64 PNG read from the clipboard.
	OnImagePaste func(base64 string)
}

// Config configures a Session.
type Config struct {
	// Columns is the wrap width used for vertical motion. It must match the
	// width the host wraps the rendered value at.
	Columns int

	// Multiline enables backslash-Return line continuation.
	Multiline bool

	// Mask replaces every rendered character (secret input).
	Mask string
	// CursorChar is drawn at end of line; defaults to a space.
	CursorChar string
	// Invert marks the caret cell. Nil leaves the caret unmarked.
	Invert func(string) string

	// DisableCursorMovementForUpDownKeys routes Up/Down (and Ctrl-P/N)
	// straight to history navigation.
	DisableCursorMovementForUpDownKeys bool

	DoublePressWindow time.Duration
	MessageTimeout    time.Duration
	ClipboardTimeout  time.Duration

	// Platform selects clipboard error reporting; defaults to runtime.GOOS.
	// Only darwin shows a message when no image is found.
	Platform string

	Clipboard clipboard.ImageReader
	Scheduler gate.Scheduler
	Logger    *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.DoublePressWindow <= 0 {
		c.DoublePressWindow = gate.DefaultWindow
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = DefaultMessageTimeout
	}
	if c.ClipboardTimeout <= 0 {
		c.ClipboardTimeout = DefaultClipboardTimeout
	}
	if c.Platform == "" {
		c.Platform = runtime.GOOS
	}
	if c.Scheduler == nil {
		c.Scheduler = gate.RealTime
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
