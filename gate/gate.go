// Package gate implements the double-press confirmation state machine used
// to guard exiting and destructive keys.
//
// The first Trigger arms the gate and starts a timer. A second Trigger
// before the timer fires confirms; otherwise the timer expires the gate.
package gate

import (
	"sync"
	"time"
)

// DefaultWindow is the double-press window used when Config.Window is zero.
const DefaultWindow = 800 * time.Millisecond

// Scheduler runs f after d. The returned stop function cancels a pending
// call and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) func() bool

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) func() bool { return fn(d, f) }

// RealTime schedules with time.AfterFunc. Callbacks run on the timer's
// goroutine.
var RealTime Scheduler = SchedulerFunc(func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
})

// Config configures a Gate. Every callback is optional.
type Config struct {
	// OnArm reports hint visibility: true when armed, false when the gate
	// confirms or expires.
	OnArm func(visible bool)
	// OnConfirm runs when the second press lands inside the window.
	OnConfirm func()
	// OnExpire runs when the window closes without a second press.
	OnExpire func()

	Window    time.Duration
	Scheduler Scheduler
}

// Gate is a double-press state machine. It is safe for concurrent use;
// callbacks are never invoked while the internal lock is held.
type Gate struct {
	cfg Config

	mu    sync.Mutex
	armed bool
	gen   uint64
	stop  func() bool
}

func New(cfg Config) *Gate {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = RealTime
	}
	return &Gate{cfg: cfg}
}

// Trigger registers one press.
func (g *Gate) Trigger() {
	g.mu.Lock()
	if g.armed {
		stop := g.disarmLocked()
		g.mu.Unlock()

		if stop != nil {
			stop()
		}
		g.arm(false)
		if g.cfg.OnConfirm != nil {
			g.cfg.OnConfirm()
		}
		return
	}

	g.armed = true
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	g.arm(true)

	stop := g.cfg.Scheduler.AfterFunc(g.cfg.Window, func() { g.expire(gen) })

	g.mu.Lock()
	if g.armed && g.gen == gen {
		g.stop = stop
		stop = nil
	}
	g.mu.Unlock()

	// Confirmed or expired before the timer handle was stored.
	if stop != nil {
		stop()
	}
}

// Armed reports whether the gate is waiting for a second press.
func (g *Gate) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// Stop cancels a pending timer and disarms the gate without invoking any
// callback.
func (g *Gate) Stop() {
	g.mu.Lock()
	stop := g.disarmLocked()
	g.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (g *Gate) expire(gen uint64) {
	g.mu.Lock()
	if !g.armed || g.gen != gen {
		g.mu.Unlock()
		return
	}
	g.disarmLocked()
	g.mu.Unlock()

	g.arm(false)
	if g.cfg.OnExpire != nil {
		g.cfg.OnExpire()
	}
}

// disarmLocked bumps the generation so any in-flight timer for the old arm
// becomes a no-op.
func (g *Gate) disarmLocked() func() bool {
	stop := g.stop
	g.armed = false
	g.gen++
	g.stop = nil
	return stop
}

func (g *Gate) arm(visible bool) {
	if g.cfg.OnArm != nil {
		g.cfg.OnArm(visible)
	}
}
