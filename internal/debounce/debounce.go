// Package debounce provides a cancellable single-shot timer for bubbletea
// models. Firings come back through the update loop as FiredMsg and are only
// delivered if they belong to the most recent Arm of the same Timer.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// FiredMsg is emitted when an armed timer elapses. Pass it to Accept.
type FiredMsg struct {
	timer uuid.UUID
	gen   uint64
	inner tea.Msg
}

// Timer debounces a single action. The zero value is not usable; use New.
type Timer struct {
	id    uuid.UUID
	delay time.Duration
	gen   uint64
	armed bool
}

// New returns a Timer with a fresh identity.
func New(delay time.Duration) Timer {
	return Timer{id: uuid.New(), delay: delay}
}

// ID identifies the timer instance.
func (t Timer) ID() uuid.UUID {
	return t.id
}

// Delay returns the quiet period.
func (t Timer) Delay() time.Duration {
	return t.delay
}

// Pending reports whether an armed firing has not been accepted or cancelled.
func (t Timer) Pending() bool {
	return t.armed
}

// Arm cancels any pending firing and schedules a new one. fn runs on the
// tick goroutine when the delay elapses and should only build a message;
// the message reaches the caller through Accept.
func (t *Timer) Arm(fn func() tea.Msg) tea.Cmd {
	t.gen++
	t.armed = true
	id, gen := t.id, t.gen
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		var inner tea.Msg
		if fn != nil {
			inner = fn()
		}
		return FiredMsg{timer: id, gen: gen, inner: inner}
	})
}

// Cancel drops any pending firing.
func (t *Timer) Cancel() {
	t.gen++
	t.armed = false
}

// Accept unwraps msg if it is the live firing of this timer. Stale firings
// from an earlier Arm, from before Cancel, or from another Timer return false.
func (t *Timer) Accept(msg FiredMsg) (tea.Msg, bool) {
	if !t.armed || msg.timer != t.id || msg.gen != t.gen {
		return nil, false
	}
	t.armed = false
	return msg.inner, true
}
