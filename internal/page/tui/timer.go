package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduled messages. Each carries the generation it was scheduled under;
// a message whose generation is no longer current is stale and dropped.
type (
	autoplayTickMsg struct {
		carousel string
		gen      uint64
	}
	touchSettledMsg struct {
		carousel string
		gen      uint64
	}
	resizeSettledMsg struct{ gen uint64 }
	toastExpiredMsg  struct{ gen uint64 }
)

// tickTimer implements carousel.Timer on top of tea.Tick. Arm and Disarm
// run inside Update, so the scheduled command is parked until the model
// collects it with take.
type tickTimer struct {
	carousel string
	gen      uint64
	armed    bool
	pending  tea.Cmd
}

func newTickTimer() *tickTimer {
	return &tickTimer{}
}

// bind tags future ticks with the owning carousel's ID
func (t *tickTimer) bind(id string) {
	t.carousel = id
}

// Arm schedules one tick after delay and invalidates any earlier one.
func (t *tickTimer) Arm(delay time.Duration) {
	t.gen++
	t.armed = true
	msg := autoplayTickMsg{carousel: t.carousel, gen: t.gen}
	t.pending = tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Disarm invalidates the scheduled tick.
func (t *tickTimer) Disarm() {
	t.gen++
	t.armed = false
	t.pending = nil
}

// live reports whether a tick is scheduled and current
func (t *tickTimer) live() bool {
	return t.armed
}

// take hands the parked command to the caller exactly once
func (t *tickTimer) take() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// fire consumes a tick and reports whether it is current. A current tick
// leaves the timer unarmed until the next Arm.
func (t *tickTimer) fire(msg autoplayTickMsg) bool {
	if msg.carousel != t.carousel || msg.gen != t.gen || !t.armed {
		return false
	}
	t.armed = false
	return true
}

// after schedules msg once delay has passed
func after(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}
