package prompt

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerFiredMsg struct {
	sched *TickScheduler
	id    uint64
}

// TickScheduler implements gate.Scheduler on top of tea.Tick, so gate and
// message timers fire inside Update instead of on a timer goroutine.
//
// AfterFunc only records a command; the owner must return Flush() from
// Update and route timer messages back through Fire.
type TickScheduler struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{pending: make(map[uint64]func())}
}

func (s *TickScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	s.next++
	id := s.next
	s.pending[id] = f
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{sched: s, id: id}
	}))
	s.mu.Unlock()

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, ok := s.pending[id]
		delete(s.pending, id)
		return ok
	}
}

// Flush returns the tick commands scheduled since the last call.
func (s *TickScheduler) Flush() tea.Cmd {
	s.mu.Lock()
	cmds := s.cmds
	s.cmds = nil
	s.mu.Unlock()
	return tea.Batch(cmds...)
}

// Fire runs the callback msg refers to. It reports false for messages from
// another scheduler and for timers that were stopped.
func (s *TickScheduler) Fire(msg tea.Msg) bool {
	fired, ok := msg.(timerFiredMsg)
	if !ok || fired.sched != s {
		return false
	}

	s.mu.Lock()
	f, ok := s.pending[fired.id]
	delete(s.pending, fired.id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	f()
	return true
}

// Pending reports the number of timers that have neither fired nor been
// stopped.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
