package carousel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/vitrine/internal/carousel"
)

func TestInterpretDrag(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		endX   int
		want   carousel.Command
	}{
		{"Swipe left past threshold", 100, 40, carousel.Next()},
		{"Short swipe left", 100, 70, carousel.None()},
		{"Swipe right past threshold", 40, 100, carousel.Previous()},
		{"Exactly at threshold", 100, 50, carousel.None()},
		{"One past threshold", 100, 49, carousel.Next()},
		{"No travel", 10, 10, carousel.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := carousel.InterpretDrag(tt.startX, tt.endX, carousel.DefaultDragThreshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDragSourceLifecycle(t *testing.T) {
	src := carousel.NewDragSource(carousel.ChannelMouse, 50)

	assert.Equal(t, carousel.None(), src.End(0), "end without begin yields nothing")

	assert.False(t, src.Begin(100))
	src.Move(80)
	src.Move(45)
	assert.Equal(t, carousel.DragSession{StartX: 100, CurrentX: 45, Active: true}, src.Session())

	assert.Equal(t, carousel.Next(), src.End(40))
	assert.False(t, src.Active(), "session is discarded after end")

	// Moves outside a session are ignored
	src.Move(500)
	assert.Equal(t, carousel.DragSession{}, src.Session())
}

func TestDragSourceBeginReplacesAbandonedSession(t *testing.T) {
	src := carousel.NewDragSource(carousel.ChannelTouch, 50)
	src.Begin(300)
	src.Move(10)

	assert.True(t, src.Begin(100), "second begin reports the abandoned session")
	assert.Equal(t, carousel.None(), src.End(90), "abandoned travel is not carried over")
}

func TestDragSourceCancel(t *testing.T) {
	src := carousel.NewDragSource(carousel.ChannelMouse, 0)
	assert.False(t, src.Cancel())

	src.Begin(100)
	assert.True(t, src.Cancel())
	assert.Equal(t, carousel.None(), src.End(0))
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		focusWithin bool
		want        carousel.Command
		handled     bool
	}{
		{"Left with focus", carousel.KeyArrowLeft, true, carousel.Previous(), true},
		{"Right with focus", carousel.KeyArrowRight, true, carousel.Next(), true},
		{"Right without focus", carousel.KeyArrowRight, false, carousel.None(), false},
		{"Other key with focus", "up", true, carousel.None(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, handled := carousel.KeyCommand(tt.key, tt.focusWithin)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.handled, handled)
		})
	}
}

func TestButtonAndDotCommands(t *testing.T) {
	assert.Equal(t, carousel.Previous(), carousel.ButtonCommand(carousel.ButtonPrev))
	assert.Equal(t, carousel.Next(), carousel.ButtonCommand(carousel.ButtonNext))
	assert.Equal(t, carousel.GoTo(3), carousel.DotCommand(3))
	assert.Equal(t, "goto(3)", carousel.GoTo(3).String())
}

func TestHoverTracker(t *testing.T) {
	var h carousel.HoverTracker

	entered, left := h.Update(true)
	assert.True(t, entered)
	assert.False(t, left)

	entered, left = h.Update(true)
	assert.False(t, entered || left, "repeated samples are not transitions")

	entered, left = h.Update(false)
	assert.False(t, entered)
	assert.True(t, left)
}
