package carousel

import "fmt"

// Button identifies a nav control.
type Button int

const (
	ButtonPrev Button = iota
	ButtonNext
)

// ButtonCommand maps a nav control click to its command.
func ButtonCommand(b Button) Command {
	switch b {
	case ButtonPrev:
		return Previous()
	case ButtonNext:
		return Next()
	default:
		return None()
	}
}

// DotCommand maps a click on dot i to a jump. Range checks happen in the
// controller, which ignores invalid indexes.
func DotCommand(i int) Command {
	return GoTo(i)
}

// Key names as reported by the terminal.
const (
	KeyArrowLeft  = "left"
	KeyArrowRight = "right"
)

// KeyCommand maps a key press to a command. The second result reports
// whether the key was handled and its default action should be suppressed.
// Arrow keys only count while focus is within the carousel or on its nav
// controls.
func KeyCommand(key string, focusWithin bool) (Command, bool) {
	if !focusWithin {
		return None(), false
	}
	switch key {
	case KeyArrowLeft:
		return Previous(), true
	case KeyArrowRight:
		return Next(), true
	}
	return None(), false
}

// Channel names an independent drag input.
type Channel int

const (
	ChannelTouch Channel = iota
	ChannelMouse
)

func (c Channel) String() string {
	switch c {
	case ChannelTouch:
		return "touch"
	case ChannelMouse:
		return "mouse"
	default:
		return fmt.Sprintf("Channel(%d)", c)
	}
}

// DefaultDragThreshold is the minimum horizontal travel for a swipe.
const DefaultDragThreshold = 50

// InterpretDrag turns a finished drag into a command. Travel to the left
// (startX > endX) beyond threshold means next, travel to the right means
// previous; anything at or under the threshold is ignored.
func InterpretDrag(startX, endX, threshold int) Command {
	diff := startX - endX
	if abs(diff) <= threshold {
		return None()
	}
	if diff > 0 {
		return Next()
	}
	return Previous()
}

// DragSession is the ephemeral record of one gesture.
type DragSession struct {
	StartX   int
	CurrentX int
	Active   bool
}

// DragSource tracks the session for one channel. It holds at most one
// session; beginning a new one discards whatever was in flight.
type DragSource struct {
	channel   Channel
	threshold int
	session   DragSession
}

// NewDragSource creates a drag source for a channel. A non-positive
// threshold falls back to DefaultDragThreshold.
func NewDragSource(ch Channel, threshold int) *DragSource {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragSource{channel: ch, threshold: threshold}
}

// Channel returns the channel this source reads.
func (d *DragSource) Channel() Channel {
	return d.channel
}

// Session returns a copy of the current session.
func (d *DragSource) Session() DragSession {
	return d.session
}

// Active reports whether a gesture is in progress.
func (d *DragSource) Active() bool {
	return d.session.Active
}

// Begin starts a session at x. It reports whether an unfinished session
// was discarded in the process.
func (d *DragSource) Begin(x int) (abandoned bool) {
	abandoned = d.session.Active
	d.session = DragSession{StartX: x, CurrentX: x, Active: true}
	return abandoned
}

// Move records the latest position. Moves outside a session are ignored.
func (d *DragSource) Move(x int) {
	if !d.session.Active {
		return
	}
	d.session.CurrentX = x
}

// End closes the session at x and returns the resulting command, which is
// None when no session was active or the travel was too short.
func (d *DragSource) End(x int) Command {
	if !d.session.Active {
		return None()
	}
	d.session.CurrentX = x
	cmd := InterpretDrag(d.session.StartX, d.session.CurrentX, d.threshold)
	d.session = DragSession{}
	return cmd
}

// Cancel discards the session without producing a command. It reports
// whether there was anything to discard.
func (d *DragSource) Cancel() bool {
	was := d.session.Active
	d.session = DragSession{}
	return was
}

// HoverTracker turns a stream of "pointer is inside" samples into
// enter/leave transitions.
type HoverTracker struct {
	inside bool
}

// Inside reports the last known pointer state.
func (h *HoverTracker) Inside() bool {
	return h.inside
}

// Update records a sample and reports any transition.
func (h *HoverTracker) Update(inside bool) (entered, left bool) {
	if inside == h.inside {
		return false, false
	}
	h.inside = inside
	return inside, !inside
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
