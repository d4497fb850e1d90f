package carousel

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/muurk/vitrine/internal/logging"
)

// Defaults for Options.
const (
	DefaultAutoplayDelay = 5 * time.Second
	DefaultGap           = 25
)

// Options holds construction-time constants.
type Options struct {
	AutoplayDelay time.Duration // Interval between autoplay ticks
	Gap           int           // Space between adjacent slides
	DragThreshold int           // Minimum swipe travel
}

// DefaultOptions returns the stock timings and geometry.
func DefaultOptions() Options {
	return Options{
		AutoplayDelay: DefaultAutoplayDelay,
		Gap:           DefaultGap,
		DragThreshold: DefaultDragThreshold,
	}
}

// withDefaults fills zero values
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AutoplayDelay <= 0 {
		o.AutoplayDelay = d.AutoplayDelay
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.DragThreshold <= 0 {
		o.DragThreshold = d.DragThreshold
	}
	return o
}

// Controller is the slide state machine. All state belongs to one
// instance; nothing is shared between carousels.
type Controller struct {
	id    string
	opts  Options
	state State

	// Render surface
	track Track
	dots  []Dot
	prev  NavControl
	next  NavControl

	// Autoplay
	timer Timer
	armed bool

	// Input sources
	touch *DragSource
	mouse *DragSource
	hover HoverTracker

	initialized bool
}

// New creates a controller bound to a track and a timer. A nil track
// leaves the controller permanently inert; a nil timer disables autoplay.
func New(track Track, timer Timer, opts Options) *Controller {
	opts = opts.withDefaults()
	if timer == nil {
		timer = noopTimer{}
	}
	return &Controller{
		id:    uuid.NewString(),
		opts:  opts,
		track: track,
		timer: timer,
		touch: NewDragSource(ChannelTouch, opts.DragThreshold),
		mouse: NewDragSource(ChannelMouse, opts.DragThreshold),
	}
}

// ID returns the unique instance identifier.
func (c *Controller) ID() string {
	return c.id
}

// Options returns the effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Index returns the current slide index.
func (c *Controller) Index() int {
	return c.state.Index
}

// Active reports whether the controller accepts commands.
func (c *Controller) Active() bool {
	return c.initialized && c.track != nil && !c.state.Inert()
}

// AutoplayArmed reports whether a tick is scheduled.
func (c *Controller) AutoplayArmed() bool {
	return c.armed
}

// Init sets up count slides. Dots are created through dots when it is
// non-nil; prev and next are optional. With no track or no slides the
// controller stays inert and nothing is created or armed.
func (c *Controller) Init(count int, dots DotContainer, prev, next NavControl) {
	if c.track == nil {
		logging.Warn("Carousel disabled: no track")
		return
	}
	if count <= 0 {
		logging.Debug("Carousel inert: no slides")
		return
	}

	c.state = State{Index: 0, Count: count}
	c.prev = prev
	c.next = next
	c.dots = nil
	if dots != nil {
		c.dots = lo.Times(count, func(i int) Dot {
			return dots.AddDot(i)
		})
	}
	c.initialized = true

	logging.LogCarouselEvent(c.id, "init", c.state.Index, count)
	c.Render()
	c.ArmAutoplay()
}

// Next advances one slide, looping from the last back to the first.
func (c *Controller) Next() {
	c.Apply(Next())
}

// Previous steps back one slide, looping from the first to the last.
func (c *Controller) Previous() {
	c.Apply(Previous())
}

// GoTo jumps to slide i. Out-of-range indexes are ignored.
func (c *Controller) GoTo(i int) {
	c.Apply(GoTo(i))
}

// Apply is the single mutator every input source goes through. It reports
// whether the command changed anything (state update, render and timer
// reset all happen together).
func (c *Controller) Apply(cmd Command) bool {
	if !c.Active() {
		return false
	}

	switch cmd.Kind {
	case CommandNext:
		c.state = c.state.next()
	case CommandPrevious:
		c.state = c.state.previous()
	case CommandGoTo:
		if !c.state.valid(cmd.Index) {
			logging.Debug("Ignoring out-of-range slide", logging.Carousel(c.id), logging.Index(cmd.Index))
			return false
		}
		c.state.Index = cmd.Index
	default:
		return false
	}

	logging.LogCommand(c.id, cmd.String(), c.state.Index)
	c.Render()
	c.resetAutoplay()
	return true
}

// Render pushes the current state to the surface. It is safe to call at
// any time and produces the same output for unchanged state.
func (c *Controller) Render() {
	if !c.Active() {
		return
	}

	rs := ComputeRenderState(c.state, c.track.SlideWidth(), c.opts.Gap)
	c.track.SetOffset(rs.Offset)

	for i, dot := range c.dots {
		on := i == rs.ActiveDot
		dot.SetActive(on)
		dot.SetSelected(on)
	}

	if c.prev != nil {
		c.prev.SetDisabled(rs.PrevDisabled)
		c.prev.SetAffordance(AffordanceFor(rs.PrevDisabled))
	}
	if c.next != nil {
		c.next.SetDisabled(rs.NextDisabled)
		c.next.SetAffordance(AffordanceFor(rs.NextDisabled))
	}
}

// ArmAutoplay (re)starts the autoplay schedule. It always disarms first.
func (c *Controller) ArmAutoplay() {
	if !c.Active() {
		return
	}
	c.DisarmAutoplay()
	c.timer.Arm(c.opts.AutoplayDelay)
	c.armed = true
	logging.LogAutoplay(c.id, "armed")
}

// DisarmAutoplay cancels any pending autoplay tick.
func (c *Controller) DisarmAutoplay() {
	if !c.armed {
		return
	}
	c.timer.Disarm()
	c.armed = false
	logging.LogAutoplay(c.id, "disarmed")
}

// resetAutoplay is cancel-then-reschedule
func (c *Controller) resetAutoplay() {
	c.ArmAutoplay()
}

// PressButton handles a click on a nav control.
func (c *Controller) PressButton(b Button) bool {
	return c.Apply(ButtonCommand(b))
}

// SelectDot handles a click on dot i.
func (c *Controller) SelectDot(i int) bool {
	return c.Apply(DotCommand(i))
}

// HandleKey handles a key press. It reports whether the key was consumed.
func (c *Controller) HandleKey(key string, focusWithin bool) bool {
	if !c.Active() {
		return false
	}
	cmd, handled := KeyCommand(key, focusWithin)
	if handled {
		c.Apply(cmd)
	}
	return handled
}

// source returns the drag source for a channel
func (c *Controller) source(ch Channel) *DragSource {
	if ch == ChannelTouch {
		return c.touch
	}
	return c.mouse
}

// DragSession returns the session currently held by a channel.
func (c *Controller) DragSession(ch Channel) DragSession {
	return c.source(ch).Session()
}

// DragBegin starts a gesture on a channel and pauses autoplay. An
// unfinished gesture on the same channel is discarded.
func (c *Controller) DragBegin(ch Channel, x int) {
	if !c.Active() {
		return
	}
	if c.source(ch).Begin(x) {
		logging.LogGesture(c.id, ch.String(), "abandoned", x)
	}
	logging.LogGesture(c.id, ch.String(), "begin", x)
	c.DisarmAutoplay()
}

// DragMove records pointer travel on a channel.
func (c *Controller) DragMove(ch Channel, x int) {
	if !c.Active() {
		return
	}
	c.source(ch).Move(x)
}

// DragEnd finishes a gesture, applies at most one command and re-arms
// autoplay whether or not a command fired. Ends without a matching begin
// are ignored.
func (c *Controller) DragEnd(ch Channel, x int) Command {
	if !c.Active() {
		return None()
	}
	src := c.source(ch)
	if !src.Active() {
		return None()
	}
	cmd := src.End(x)
	logging.LogGesture(c.id, ch.String(), "end", x)
	c.Apply(cmd)
	c.ArmAutoplay()
	return cmd
}

// DragCancel drops an unfinished gesture on a channel without producing a
// command and resumes autoplay.
func (c *Controller) DragCancel(ch Channel) {
	if !c.Active() {
		return
	}
	src := c.source(ch)
	lastX := src.Session().CurrentX
	if src.Cancel() {
		logging.LogGesture(c.id, ch.String(), "cancelled", lastX)
		c.ArmAutoplay()
	}
}

// PointerEnter pauses autoplay while the pointer is over the carousel.
func (c *Controller) PointerEnter() {
	if !c.Active() {
		return
	}
	if entered, _ := c.hover.Update(true); entered {
		c.DisarmAutoplay()
	}
}

// PointerLeave resumes autoplay when the pointer leaves the carousel.
func (c *Controller) PointerLeave() {
	if !c.Active() {
		return
	}
	if _, left := c.hover.Update(false); left {
		c.ArmAutoplay()
	}
}

// Hovered reports whether the pointer is over the carousel.
func (c *Controller) Hovered() bool {
	return c.hover.Inside()
}
