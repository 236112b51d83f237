package gate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	ft := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, ft)
	return func() bool {
		was := !ft.stopped
		ft.stopped = true
		return was
	}
}

// fire runs timer i regardless of whether it was stopped, mimicking a timer
// that raced its cancellation.
func (s *fakeScheduler) fire(i int) { s.timers[i].f() }

type recorder struct {
	events []string
}

func (r *recorder) config(s Scheduler) Config {
	return Config{
		OnArm: func(visible bool) {
			if visible {
				r.events = append(r.events, "show")
			} else {
				r.events = append(r.events, "hide")
			}
		},
		OnConfirm: func() { r.events = append(r.events, "confirm") },
		OnExpire:  func() { r.events = append(r.events, "expire") },
		Window:    time.Second,
		Scheduler: s,
	}
}

func TestGate_SinglePressExpires(t *testing.T) {
	s := &fakeScheduler{}
	r := &recorder{}
	g := New(r.config(s))

	g.Trigger()
	if !g.Armed() {
		t.Fatalf("gate should be armed after first press")
	}
	if len(s.timers) != 1 || s.timers[0].d != time.Second {
		t.Fatalf("timers: got %d, want one with window %v", len(s.timers), time.Second)
	}

	s.fire(0)
	if g.Armed() {
		t.Fatalf("gate should be disarmed after expiry")
	}
	if diff := cmp.Diff([]string{"show", "hide", "expire"}, r.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestGate_DoublePressConfirms(t *testing.T) {
	s := &fakeScheduler{}
	r := &recorder{}
	g := New(r.config(s))

	g.Trigger()
	g.Trigger()
	if g.Armed() {
		t.Fatalf("gate should be disarmed after confirm")
	}
	if !s.timers[0].stopped {
		t.Fatalf("confirm must cancel the pending timer")
	}

	// A timer that fires after cancellation is a no-op.
	s.fire(0)
	if diff := cmp.Diff([]string{"show", "hide", "confirm"}, r.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestGate_ThirdPressRearms(t *testing.T) {
	s := &fakeScheduler{}
	r := &recorder{}
	g := New(r.config(s))

	g.Trigger()
	g.Trigger()
	g.Trigger()
	if !g.Armed() {
		t.Fatalf("third press should arm from scratch")
	}
	if len(s.timers) != 2 {
		t.Fatalf("timers: got %d, want %d", len(s.timers), 2)
	}

	// The stale first timer must not expire the new arm.
	s.fire(0)
	if !g.Armed() {
		t.Fatalf("stale timer disarmed the gate")
	}

	s.fire(1)
	want := []string{"show", "hide", "confirm", "show", "hide", "expire"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestGate_ExpireWithoutOptionalCallbacks(t *testing.T) {
	s := &fakeScheduler{}
	var hints []bool
	g := New(Config{
		OnArm:     func(v bool) { hints = append(hints, v) },
		Scheduler: s,
	})

	g.Trigger()
	if got := s.timers[0].d; got != DefaultWindow {
		t.Fatalf("window: got %v, want %v", got, DefaultWindow)
	}
	s.fire(0)
	if diff := cmp.Diff([]bool{true, false}, hints); diff != "" {
		t.Fatalf("hints mismatch (-want +got):\n%s", diff)
	}
}

func TestGate_StopIsSilent(t *testing.T) {
	s := &fakeScheduler{}
	r := &recorder{}
	g := New(r.config(s))

	g.Trigger()
	g.Stop()
	s.fire(0)

	if g.Armed() {
		t.Fatalf("gate should be disarmed after stop")
	}
	if diff := cmp.Diff([]string{"show"}, r.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestGate_RealTime(t *testing.T) {
	defer goleak.VerifyNone(t)

	expired := make(chan struct{})
	confirmed := make(chan struct{}, 1)
	g := New(Config{
		OnConfirm: func() { confirmed <- struct{}{} },
		OnExpire:  func() { close(expired) },
		Window:    20 * time.Millisecond,
	})

	g.Trigger()
	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatalf("gate did not expire")
	}

	g.Trigger()
	g.Trigger()
	select {
	case <-confirmed:
	default:
		t.Fatalf("double press did not confirm")
	}
}
