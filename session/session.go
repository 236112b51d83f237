// Package session binds key dispatch and cursor operations to host-owned
// text state.
//
// A Session holds no copy of the text: every key event builds a transient
// cursor from the host's Buffer, applies the resolved operation, and writes
// the result back only when it differs.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/cursor"
	"github.com/iw2rmb/kodeline/gate"
	"github.com/iw2rmb/kodeline/keys"
)

type Session struct {
	buf Buffer
	cfg Config
	h   Handlers
	log *zap.Logger

	ctrlC  *gate.Gate
	ctrlD  *gate.Gate
	escape *gate.Gate

	mu        sync.Mutex
	msgActive bool
	msgGen    uint64
	msgStop   func() bool
}

func New(buf Buffer, cfg Config, h Handlers) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		buf: buf,
		cfg: cfg,
		h:   h,
		log: cfg.Logger,
	}

	s.ctrlC = gate.New(gate.Config{
		OnArm: func(visible bool) {
			s.clearTransient()
			s.exitMessage(visible, "Ctrl-C")
		},
		OnConfirm: s.exit,
		Window:    cfg.DoublePressWindow,
		Scheduler: cfg.Scheduler,
	})
	s.ctrlD = gate.New(gate.Config{
		OnArm:     func(visible bool) { s.exitMessage(visible, "Ctrl-D") },
		OnConfirm: s.exit,
		Window:    cfg.DoublePressWindow,
		Scheduler: cfg.Scheduler,
	})
	s.escape = gate.New(gate.Config{
		OnArm: func(visible bool) {
			s.clearTransient()
			s.message(visible && s.buf.Value() != "", EscapeHint)
		},
		OnConfirm: func() {
			c := s.cursor()
			if !c.IsEmpty() {
				s.commit(c, c.Clear())
			}
		},
		Window:    cfg.DoublePressWindow,
		Scheduler: cfg.Scheduler,
	})
	return s
}

// OnInput processes one key event to completion.
func (s *Session) OnInput(input string, k keys.Key) {
	before := s.cursor()

	ctx := keys.Context{Multiline: s.cfg.Multiline}
	ctx.PrevRune, ctx.HasPrev = before.RuneBefore()
	op := keys.Resolve(input, k, ctx)
	s.log.Debug("key resolved",
		zap.Stringer("op", op),
		zap.Int("offset", before.Offset()),
		zap.Int("len", before.Len()),
	)

	s.commit(before, s.apply(op, input, before))
}

// RenderedValue is the caret-marked (and masked) buffer.
func (s *Session) RenderedValue() string {
	return s.cursor().Render(s.cfg.CursorChar, s.cfg.Mask, s.cfg.Invert)
}

// RenderedRows is RenderedValue split into the visual rows used for
// vertical motion.
func (s *Session) RenderedRows() []string {
	return s.cursor().RenderRows(s.cfg.CursorChar, s.cfg.Mask, s.cfg.Invert)
}

func (s *Session) Offset() int { return s.cursor().Offset() }

func (s *Session) SetOffset(offset int) { s.buf.SetOffset(offset) }

// Columns returns the wrap width used for vertical motion.
func (s *Session) Columns() int { return s.cfg.Columns }

// SetColumns updates the wrap width after a resize.
func (s *Session) SetColumns(columns int) { s.cfg.Columns = columns }

// Close cancels pending gate and message timers without running callbacks.
func (s *Session) Close() {
	s.ctrlC.Stop()
	s.ctrlD.Stop()
	s.escape.Stop()

	s.mu.Lock()
	stop := s.resetTransientLocked()
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (s *Session) cursor() cursor.Cursor {
	return cursor.New(s.buf.Value(), s.cfg.Columns, s.buf.Offset())
}

// commit writes text before offset so observers of the text never see a
// stale offset against new text.
func (s *Session) commit(before, after cursor.Cursor) {
	if before.Equals(after) {
		return
	}
	s.buf.SetValue(after.Text())
	s.buf.SetOffset(after.Offset())
}

func (s *Session) apply(op keys.Op, input string, c cursor.Cursor) cursor.Cursor {
	switch op {
	case keys.OpInsert:
		return c.Insert(input)
	case keys.OpBackspace:
		s.clearTransient()
		return c.Backspace()
	case keys.OpDelete:
		s.clearTransient()
		return c.Del()

	case keys.OpLeft:
		return c.Left()
	case keys.OpRight:
		return c.Right()
	case keys.OpUp:
		return s.upOrHistoryUp(c)
	case keys.OpDown:
		return s.downOrHistoryDown(c)
	case keys.OpStartOfLine:
		return c.StartOfLine()
	case keys.OpEndOfLine:
		return c.EndOfLine()
	case keys.OpPrevWord:
		return c.PrevWord()
	case keys.OpNextWord:
		return c.NextWord()

	case keys.OpDeleteToLineStart:
		return c.DeleteToLineStart()
	case keys.OpDeleteToLineEnd:
		return c.DeleteToLineEnd()
	case keys.OpDeleteWordBefore:
		return c.DeleteWordBefore()
	case keys.OpDeleteWordAfter:
		return c.DeleteWordAfter()
	case keys.OpClear:
		return c.Clear()

	case keys.OpCtrlC:
		return s.handleCtrlC(c)
	case keys.OpCtrlD:
		s.clearTransient()
		if c.IsEmpty() {
			s.ctrlD.Trigger()
			return c
		}
		return c.Del()
	case keys.OpEscape:
		s.escape.Trigger()
		return c
	case keys.OpPasteImage:
		return s.pasteImage(c)

	case keys.OpSubmit:
		if s.h.OnSubmit != nil {
			s.h.OnSubmit(c.Text())
		}
		return c
	case keys.OpNewline:
		return c.Insert("\n")
	case keys.OpLineContinuation:
		return c.Backspace().Insert("\n")
	}
	return c
}

// handleCtrlC arms or confirms the exit gate. The first press also clears a
// non-empty buffer and resets history scrolling.
func (s *Session) handleCtrlC(c cursor.Cursor) cursor.Cursor {
	first := !s.ctrlC.Armed()
	s.ctrlC.Trigger()
	if !first || c.IsEmpty() {
		return c
	}
	if s.h.OnHistoryReset != nil {
		s.h.OnHistoryReset()
	}
	return c.Clear()
}

func (s *Session) upOrHistoryUp(c cursor.Cursor) cursor.Cursor {
	if s.cfg.DisableCursorMovementForUpDownKeys {
		s.historyUp()
		return c
	}
	up := c.Up()
	if up.Equals(c) {
		s.historyUp()
	}
	return up
}

func (s *Session) downOrHistoryDown(c cursor.Cursor) cursor.Cursor {
	if s.cfg.DisableCursorMovementForUpDownKeys {
		s.historyDown()
		return c
	}
	down := c.Down()
	if down.Equals(c) {
		s.historyDown()
	}
	return down
}

func (s *Session) pasteImage(c cursor.Cursor) cursor.Cursor {
	if s.cfg.Clipboard == nil {
		return c
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ClipboardTimeout)
	defer cancel()

	img, err := s.cfg.Clipboard.ReadImage(ctx)
	if err != nil || img == "" {
		if s.cfg.Platform != "darwin" {
			return c
		}
		s.log.Warn("image paste found no image", zap.Error(err))
		s.showTransient(clipboard.ErrorMessage)
		return c
	}

	if s.h.OnImagePaste != nil {
		s.h.OnImagePaste(img)
	}
	return c.Insert(ImagePlaceholder)
}

func (s *Session) historyUp() {
	if s.h.OnHistoryUp != nil {
		s.h.OnHistoryUp()
	}
}

func (s *Session) historyDown() {
	if s.h.OnHistoryDown != nil {
		s.h.OnHistoryDown()
	}
}

func (s *Session) exit() {
	if s.h.OnExit != nil {
		s.h.OnExit()
	}
}

func (s *Session) exitMessage(visible bool, key string) {
	if s.h.OnExitMessage != nil {
		s.h.OnExitMessage(visible, key)
	}
}

func (s *Session) message(visible bool, text string) {
	if s.h.OnMessage != nil {
		s.h.OnMessage(visible, text)
	}
}
