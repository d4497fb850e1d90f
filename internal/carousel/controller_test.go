package carousel_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/muurk/vitrine/internal/carousel"
	"github.com/muurk/vitrine/internal/carousel/mocks"
)

func TestControllerWrapsAtBothEnds(t *testing.T) {
	c, _, _, _, _, _ := newTestController(4)

	c.GoTo(3)
	c.Next()
	assert.Equal(t, 0, c.Index(), "next from last wraps to first")

	c.Previous()
	assert.Equal(t, 3, c.Index(), "previous from first wraps to last")
}

func TestControllerIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for count := 1; count <= 7; count++ {
		c, _, _, _, _, _ := newTestController(count)
		for i := 0; i < 200; i++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Previous()
			}
			idx := c.Index()
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, count)
		}
	}
}

func TestControllerGoTo(t *testing.T) {
	c, track, _, _, _, _ := newTestController(5)
	rendersBefore := track.renders

	for _, i := range []int{-1, 5, 99} {
		c.GoTo(i)
		assert.Equal(t, 0, c.Index(), "GoTo(%d) must not change state", i)
	}
	assert.Equal(t, rendersBefore, track.renders, "out-of-range GoTo must not render")

	c.GoTo(2)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, rendersBefore+1, track.renders)
}

func TestControllerRenderState(t *testing.T) {
	c, track, _, dots, prev, next := newTestController(3)

	require.Len(t, dots.dots, 3)
	assert.Equal(t, 0, track.offset)
	assert.True(t, dots.dots[0].active)
	assert.True(t, dots.dots[0].selected)
	assert.True(t, prev.disabled)
	assert.False(t, next.disabled)
	assert.Equal(t, carousel.AffordanceFor(true), prev.affordance)

	c.GoTo(2)
	assert.Equal(t, -2*(100+carousel.DefaultGap), track.offset)
	assert.False(t, dots.dots[0].active)
	assert.True(t, dots.dots[2].active)
	assert.True(t, dots.dots[2].selected)
	assert.False(t, prev.disabled)
	assert.True(t, next.disabled)
	assert.Equal(t, carousel.AffordanceFor(false), prev.affordance)
}

func TestControllerRenderMeasuresLiveWidth(t *testing.T) {
	c, track, _, _, _, _ := newTestController(3)
	c.GoTo(1)
	assert.Equal(t, -125, track.offset)

	track.width = 60
	c.Render()
	assert.Equal(t, -85, track.offset)

	// Idempotent for unchanged state
	c.Render()
	assert.Equal(t, -85, track.offset)
	assert.Equal(t, 1, c.Index())
}

func TestControllerSingleSlide(t *testing.T) {
	c, _, _, _, prev, next := newTestController(1)

	assert.True(t, prev.disabled)
	assert.True(t, next.disabled)

	c.Next()
	assert.Equal(t, 0, c.Index())
	c.Previous()
	assert.Equal(t, 0, c.Index())
}

func TestControllerZeroSlidesIsInert(t *testing.T) {
	c, track, timer, dots, _, _ := newTestController(0)

	assert.Empty(t, dots.dots, "no dots are created")
	assert.Equal(t, 0, timer.arms, "no timer is armed")
	assert.False(t, c.AutoplayArmed())

	c.Render()
	c.Next()
	c.Previous()
	c.GoTo(0)
	c.DragBegin(carousel.ChannelMouse, 100)
	c.DragEnd(carousel.ChannelMouse, 0)
	c.PointerLeave()
	assert.Equal(t, 0, track.renders)
	assert.Equal(t, 0, timer.arms)
	assert.False(t, c.Active())
}

func TestControllerWithoutTrackIsInert(t *testing.T) {
	timer := &fakeTimer{}
	dots := &fakeDots{}
	c := carousel.New(nil, timer, carousel.DefaultOptions())
	c.Init(3, dots, nil, nil)

	c.Next()
	c.Render()
	assert.False(t, c.Active())
	assert.Empty(t, dots.dots)
	assert.Equal(t, 0, timer.arms)
}

func TestControllerOptionalSurfaceParts(t *testing.T) {
	track := &fakeTrack{width: 80}
	c := carousel.New(track, nil, carousel.Options{})
	c.Init(2, nil, nil, nil)

	c.Next()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, -(80 + carousel.DefaultGap), track.offset)
	assert.Equal(t, carousel.DefaultAutoplayDelay, c.Options().AutoplayDelay)
}

func TestControllerKeepsOneLiveTimer(t *testing.T) {
	c, _, timer, _, _, _ := newTestController(4)
	require.Equal(t, 1, timer.live)

	for i := 0; i < 25; i++ {
		switch i % 3 {
		case 0:
			c.Next()
		case 1:
			c.Previous()
		default:
			c.GoTo(i % 4)
		}
		require.Equal(t, 1, timer.live, "after %d commands", i+1)
	}
	assert.True(t, c.AutoplayArmed())
	for _, d := range timer.delays {
		assert.Equal(t, 5*time.Second, d)
	}
}

func TestControllerDragDisarmsAndRearms(t *testing.T) {
	tests := []struct {
		name      string
		startX    int
		endX      int
		wantIndex int
	}{
		{"Swipe to next", 100, 40, 1},
		{"Too short", 100, 70, 0},
		{"Swipe to previous", 40, 100, 3},
	}

	for _, tt := range tests {
		for _, ch := range []carousel.Channel{carousel.ChannelTouch, carousel.ChannelMouse} {
			t.Run(tt.name+"/"+ch.String(), func(t *testing.T) {
				c, _, timer, _, _, _ := newTestController(4)

				c.DragBegin(ch, tt.startX)
				assert.False(t, c.AutoplayArmed(), "drag begin pauses autoplay")
				assert.Equal(t, 0, timer.live)

				c.DragMove(ch, (tt.startX+tt.endX)/2)
				c.DragEnd(ch, tt.endX)

				assert.Equal(t, tt.wantIndex, c.Index())
				assert.True(t, c.AutoplayArmed(), "drag end always re-arms")
				assert.Equal(t, 1, timer.live)
			})
		}
	}
}

func TestControllerDragChannelsAreIndependent(t *testing.T) {
	c, _, _, _, _, _ := newTestController(5)

	c.DragBegin(carousel.ChannelTouch, 200)
	c.DragBegin(carousel.ChannelMouse, 0)

	c.DragEnd(carousel.ChannelMouse, 100) // previous
	c.DragEnd(carousel.ChannelTouch, 100) // next

	assert.Equal(t, 0, c.Index(), "both gestures applied in arrival order")
}

func TestControllerDragCancel(t *testing.T) {
	c, _, timer, _, _, _ := newTestController(3)

	c.DragBegin(carousel.ChannelMouse, 100)
	c.DragCancel(carousel.ChannelMouse)

	assert.Equal(t, 0, c.Index())
	assert.True(t, c.AutoplayArmed())
	assert.Equal(t, 1, timer.live)
	assert.False(t, c.DragSession(carousel.ChannelMouse).Active)
}

func TestControllerHover(t *testing.T) {
	c, _, timer, _, _, _ := newTestController(3)

	c.PointerEnter()
	assert.False(t, c.AutoplayArmed())
	assert.True(t, c.Hovered())

	c.PointerEnter()
	assert.Equal(t, 0, timer.live)

	c.PointerLeave()
	assert.True(t, c.AutoplayArmed())
	assert.Equal(t, 1, timer.live)
}

func TestControllerHandleKey(t *testing.T) {
	c, _, _, _, _, _ := newTestController(3)

	assert.False(t, c.HandleKey(carousel.KeyArrowRight, false))
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.HandleKey(carousel.KeyArrowRight, true))
	assert.Equal(t, 1, c.Index())

	assert.True(t, c.HandleKey(carousel.KeyArrowLeft, true))
	assert.Equal(t, 0, c.Index())
}

func TestControllerButtonsAndDots(t *testing.T) {
	c, _, _, _, _, _ := newTestController(3)

	assert.True(t, c.PressButton(carousel.ButtonPrev))
	assert.Equal(t, 2, c.Index())
	assert.True(t, c.PressButton(carousel.ButtonNext))
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.SelectDot(1))
	assert.Equal(t, 1, c.Index())
	assert.False(t, c.SelectDot(7))
}

func TestControllerInstancesDoNotShareState(t *testing.T) {
	a, _, _, _, _, _ := newTestController(3)
	b, _, _, _, _, _ := newTestController(3)

	a.Next()
	a.Next()
	assert.Equal(t, 2, a.Index())
	assert.Equal(t, 0, b.Index())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestControllerTimerProtocol(t *testing.T) {
	ctrl := gomock.NewController(t)
	track := mocks.NewMockTrack(ctrl)
	timer := mocks.NewMockTimer(ctrl)

	track.EXPECT().SlideWidth().Return(40).AnyTimes()
	gomock.InOrder(
		track.EXPECT().SetOffset(0),
		timer.EXPECT().Arm(2*time.Second),
		track.EXPECT().SetOffset(-50),
		timer.EXPECT().Disarm(),
		timer.EXPECT().Arm(2*time.Second),
	)

	c := carousel.New(track, timer, carousel.Options{AutoplayDelay: 2 * time.Second, Gap: 10})
	c.Init(2, nil, nil, nil)
	c.Next()
}

func TestControllerInitBuildsDotsAndNav(t *testing.T) {
	ctrl := gomock.NewController(t)
	track := mocks.NewMockTrack(ctrl)
	container := mocks.NewMockDotContainer(ctrl)
	prev := mocks.NewMockNavControl(ctrl)
	next := mocks.NewMockNavControl(ctrl)

	dots := []*mocks.MockDot{mocks.NewMockDot(ctrl), mocks.NewMockDot(ctrl)}
	for i, d := range dots {
		container.EXPECT().AddDot(i).Return(d)
		d.EXPECT().SetActive(i == 0)
		d.EXPECT().SetSelected(i == 0)
	}

	track.EXPECT().SlideWidth().Return(30)
	track.EXPECT().SetOffset(0)
	prev.EXPECT().SetDisabled(true)
	prev.EXPECT().SetAffordance(carousel.AffordanceFor(true))
	next.EXPECT().SetDisabled(false)
	next.EXPECT().SetAffordance(carousel.AffordanceFor(false))

	c := carousel.New(track, nil, carousel.DefaultOptions())
	c.Init(2, container, prev, next)
	assert.True(t, c.Active())
}
