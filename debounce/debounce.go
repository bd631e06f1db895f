// Package debounce provides cancelable one-shot timers for the bubbletea update loop.
//
// A Timer never runs its callback on another goroutine. Arm returns a tea.Cmd
// whose tick message must be routed back through Update, where stale or
// canceled ticks are dropped. This keeps every state mutation on the UI loop.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FireMsg is delivered when an armed Timer's delay elapses.
type FireMsg struct {
	ID  int
	tag int
}

// Timer runs the most recently armed callback once its delay elapses without
// being re-armed, canceled or stopped.
type Timer struct {
	id      int
	tag     int
	delay   time.Duration
	pending func()
	stopped bool
}

// New returns an idle Timer with the given delay.
func New(delay time.Duration) *Timer {
	return &Timer{id: nextID(), delay: delay}
}

// ID identifies the timer in FireMsg.
func (t *Timer) ID() int {
	return t.id
}

// Delay returns the configured delay.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Pending reports whether a callback is armed.
func (t *Timer) Pending() bool {
	return t.pending != nil
}

// Arm schedules fn, superseding any pending callback. It returns nil once the
// timer is stopped.
func (t *Timer) Arm(fn func()) tea.Cmd {
	if t.stopped {
		return nil
	}

	t.tag++
	t.pending = fn

	id, tag := t.id, t.tag
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return FireMsg{ID: id, tag: tag}
	})
}

// Cancel drops the pending callback.
func (t *Timer) Cancel() {
	t.tag++
	t.pending = nil
}

// Flush runs the pending callback now.
func (t *Timer) Flush() {
	fn := t.pending
	t.Cancel()
	if fn != nil {
		fn()
	}
}

// Stop cancels the timer for good. Later Arm calls are ignored.
func (t *Timer) Stop() {
	t.Cancel()
	t.stopped = true
}

// Update runs the pending callback if msg is this timer's current tick.
// It reports whether msg belonged to this timer.
func (t *Timer) Update(msg tea.Msg) bool {
	fire, ok := msg.(FireMsg)
	if !ok || fire.ID != t.id {
		return false
	}

	if fire.tag != t.tag || t.stopped {
		return true
	}

	t.Flush()
	return true
}
