package carousel_test

import (
	"time"

	"github.com/muurk/vitrine/internal/carousel"
)

// fakeTrack records every offset pushed to it.
type fakeTrack struct {
	width   int
	offset  int
	renders int
}

func (t *fakeTrack) SlideWidth() int { return t.width }

func (t *fakeTrack) SetOffset(offset int) {
	t.offset = offset
	t.renders++
}

// fakeTimer counts schedules that are still live.
type fakeTimer struct {
	live   int
	arms   int
	delays []time.Duration
}

func (t *fakeTimer) Arm(d time.Duration) {
	t.live++
	t.arms++
	t.delays = append(t.delays, d)
}

func (t *fakeTimer) Disarm() {
	if t.live > 0 {
		t.live--
	}
}

type fakeDot struct {
	active   bool
	selected bool
}

func (d *fakeDot) SetActive(active bool)     { d.active = active }
func (d *fakeDot) SetSelected(selected bool) { d.selected = selected }

type fakeDots struct {
	dots []*fakeDot
}

func (c *fakeDots) AddDot(int) carousel.Dot {
	d := &fakeDot{}
	c.dots = append(c.dots, d)
	return d
}

type fakeNav struct {
	disabled   bool
	affordance carousel.Affordance
}

func (n *fakeNav) SetDisabled(disabled bool)           { n.disabled = disabled }
func (n *fakeNav) SetAffordance(a carousel.Affordance) { n.affordance = a }

// newTestController builds an initialized controller with fakes attached.
func newTestController(count int) (*carousel.Controller, *fakeTrack, *fakeTimer, *fakeDots, *fakeNav, *fakeNav) {
	track := &fakeTrack{width: 100}
	timer := &fakeTimer{}
	dots := &fakeDots{}
	prev, next := &fakeNav{}, &fakeNav{}
	c := carousel.New(track, timer, carousel.DefaultOptions())
	c.Init(count, dots, prev, next)
	return c, track, timer, dots, prev, next
}
