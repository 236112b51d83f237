package session

// showTransient shows text and hides it after MessageTimeout unless a
// qualifying key clears it first. A previous pending message is replaced.
func (s *Session) showTransient(text string) {
	s.mu.Lock()
	prev := s.msgStop
	s.msgGen++
	gen := s.msgGen
	s.msgActive = true
	s.msgStop = nil
	s.mu.Unlock()
	if prev != nil {
		prev()
	}

	s.message(true, text)

	stop := s.cfg.Scheduler.AfterFunc(s.cfg.MessageTimeout, func() { s.expireTransient(gen) })

	s.mu.Lock()
	if s.msgActive && s.msgGen == gen {
		s.msgStop = stop
		stop = nil
	}
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// clearTransient hides a pending transient message early.
func (s *Session) clearTransient() {
	s.mu.Lock()
	if !s.msgActive {
		s.mu.Unlock()
		return
	}
	stop := s.resetTransientLocked()
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.message(false, "")
}

func (s *Session) expireTransient(gen uint64) {
	s.mu.Lock()
	if !s.msgActive || s.msgGen != gen {
		s.mu.Unlock()
		return
	}
	s.resetTransientLocked()
	s.mu.Unlock()

	s.message(false, "")
}

func (s *Session) resetTransientLocked() func() bool {
	stop := s.msgStop
	s.msgStop = nil
	s.msgActive = false
	s.msgGen++
	return stop
}
