package dialog

import (
	"github.com/muurk/vitrine/internal/logging"
)

// State is the dialog's visibility.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Target identifies where a click landed relative to the dialog.
type Target int

const (
	// TargetBackdrop is anywhere outside the content box.
	TargetBackdrop Target = iota
	// TargetContent is inside the content box but not on a control.
	TargetContent
	// TargetClose is the close control.
	TargetClose
)

// Key names as reported by the terminal.
const (
	KeyEscape   = "esc"
	KeyTab      = "tab"
	KeyShiftTab = "shift+tab"
)

// Controller holds dialog state. Build one with New.
type Controller struct {
	state        State
	focusables   []string
	focus        int
	scrollLocked bool
}

// New creates a closed dialog whose focusable controls are named, in
// focus order, by focusables.
func New(focusables ...string) *Controller {
	return &Controller{
		state:      Closed,
		focusables: append([]string(nil), focusables...),
		focus:      -1,
	}
}

// State returns the current state.
func (d *Controller) State() State {
	if d == nil {
		return Closed
	}
	return d.state
}

// IsOpen reports whether the dialog is showing.
func (d *Controller) IsOpen() bool {
	return d.State() == Open
}

// ScrollLocked reports whether the page behind the dialog may scroll.
func (d *Controller) ScrollLocked() bool {
	return d != nil && d.scrollLocked
}

// Focused returns the name of the focused control, or "" when closed or
// when the dialog has no focusable controls.
func (d *Controller) Focused() string {
	if d == nil || d.state != Open || d.focus < 0 || d.focus >= len(d.focusables) {
		return ""
	}
	return d.focusables[d.focus]
}

// Open shows the dialog, locks page scroll and focuses the first control.
// It reports whether the state changed.
func (d *Controller) Open(trigger string) bool {
	if d == nil || d.state == Open {
		return false
	}
	d.state = Open
	d.scrollLocked = true
	d.focus = -1
	if len(d.focusables) > 0 {
		d.focus = 0
	}
	logging.LogDialog(Closed.String(), Open.String(), trigger)
	return true
}

// Close hides the dialog and restores page scroll. It reports whether the
// state changed.
func (d *Controller) Close(trigger string) bool {
	if d == nil || d.state == Closed {
		return false
	}
	d.state = Closed
	d.scrollLocked = false
	d.focus = -1
	logging.LogDialog(Open.String(), Closed.String(), trigger)
	return true
}

// HandleKey processes a key while the dialog is open and reports whether
// it was consumed. Escape closes; Tab and Shift+Tab stay inside the dialog.
func (d *Controller) HandleKey(key string) bool {
	if d == nil || d.state != Open {
		return false
	}
	switch key {
	case KeyEscape:
		return d.Close("escape")
	case KeyTab:
		d.moveFocus(1)
		return true
	case KeyShiftTab:
		d.moveFocus(-1)
		return true
	}
	return false
}

// Click processes a click while the dialog is open and reports whether it
// was consumed. Clicks on content never reach the backdrop handler.
func (d *Controller) Click(target Target) bool {
	if d == nil || d.state != Open {
		return false
	}
	switch target {
	case TargetBackdrop:
		return d.Close("backdrop")
	case TargetClose:
		return d.Close("close")
	case TargetContent:
		return true
	}
	return false
}

// FocusControl moves focus to the named control if it exists.
func (d *Controller) FocusControl(name string) bool {
	if d == nil || d.state != Open {
		return false
	}
	for i, f := range d.focusables {
		if f == name {
			d.focus = i
			return true
		}
	}
	return false
}

// moveFocus cycles focus by delta, wrapping at both ends
func (d *Controller) moveFocus(delta int) {
	n := len(d.focusables)
	if n == 0 {
		return
	}
	d.focus = ((d.focus+delta)%n + n) % n
}
