package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/vitrine/internal/carousel"
	"github.com/muurk/vitrine/internal/config"
)

func testSlides() []config.Slide {
	return []config.Slide{
		{Title: "Alpha", Body: "Alpha body"},
		{Title: "Beta", Body: "Beta body", Caption: "beta caption"},
	}
}

func TestRenderSlideIsExactSize(t *testing.T) {
	rows := renderSlide(config.Slide{Body: "# Heading\n\nSome text", Caption: "cap"}, 30, 6)

	require.Len(t, rows, 6)
	for i, row := range rows {
		assert.Equal(t, 30, ansi.StringWidth(row), "row %d", i)
	}
	assert.Contains(t, ansi.Strip(rows[5]), "cap")
}

func TestRenderSlideFallsBackToTitle(t *testing.T) {
	rows := renderSlide(config.Slide{Title: "Only a title"}, 30, 4)
	assert.Contains(t, ansi.Strip(strings.Join(rows, "\n")), "Only a title")
}

func TestCarouselViewWindowFollowsOffset(t *testing.T) {
	v := newCarouselView(testSlides(), 20, 4, 5)

	first := ansi.Strip(v.View())
	assert.Contains(t, first, "Alpha")
	assert.NotContains(t, first, "Beta")

	v.SetOffset(-(20 + 5))
	second := ansi.Strip(v.View())
	assert.Contains(t, second, "Beta")
	assert.NotContains(t, second, "Alpha")

	for _, line := range splitLines(v.View()) {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
}

func TestCarouselViewStripCache(t *testing.T) {
	v := newCarouselView(testSlides(), 20, 4, 5)

	rows := v.stripRows()
	assert.Equal(t, 2*20+5, ansi.StringWidth(rows[0]))

	assert.False(t, v.setWidth(20), "same width is not a change")
	assert.True(t, v.setWidth(30))
	rows = v.stripRows()
	assert.Equal(t, 2*30+5, ansi.StringWidth(rows[0]), "strip is rebuilt for the new width")
}

func TestCarouselViewClampsWidth(t *testing.T) {
	v := newCarouselView(testSlides(), 2, 0, -3)
	assert.Equal(t, minSlideW, v.SlideWidth())
	assert.Equal(t, 1, v.height)
	assert.Equal(t, 0, v.gap)
}

func TestCarouselViewEmptyDeck(t *testing.T) {
	v := newCarouselView(nil, 30, 3, 5)
	assert.Contains(t, ansi.Strip(v.View()), "No slides to show.")
}

func TestCarouselViewAsSurface(t *testing.T) {
	v := newCarouselView(testSlides(), 40, 4, 5)
	ctrl := carousel.New(v, nil, carousel.DefaultOptions())
	ctrl.Init(2, v, v.prev, v.next)

	require.Len(t, v.dots, 2)
	assert.Equal(t, 0, v.activeIndex())
	assert.True(t, v.dots[0].selected)
	assert.True(t, v.prev.disabled)
	assert.Equal(t, carousel.AffordanceFor(true), v.prev.affordance)

	ctrl.Next()
	assert.Equal(t, -(40 + carousel.DefaultGap), v.offset, "offsets use the controller's gap")
	assert.Equal(t, 1, v.activeIndex())
	assert.False(t, v.dots[0].selected)
	assert.True(t, v.next.disabled)
	assert.False(t, v.prev.disabled)
}

func TestControlsView(t *testing.T) {
	v := newCarouselView(testSlides(), 40, 4, 5)
	v.AddDot(0).SetActive(true)
	v.AddDot(1)

	row := ansi.Strip(v.controlsView(true, focusCarousel))
	assert.Equal(t, 40, ansi.StringWidth(row))
	assert.True(t, strings.HasPrefix(row, prevLabel))
	assert.True(t, strings.HasSuffix(row, nextLabel))
	assert.Equal(t, dotsStart(2, 40), ansi.StringWidth(row[:strings.Index(row, dotActive)]))

	noNav := ansi.Strip(v.controlsView(false, focusCarousel))
	assert.NotContains(t, noNav, prevLabel)
	assert.Contains(t, noNav, dotInactive)
}

func TestLayoutHitTest(t *testing.T) {
	l := computeLayout(80, 76, 12, 3, true, 4)

	assert.Equal(t, hit{kind: hitSlide}, l.hitTest(40, 5))
	assert.Equal(t, hit{kind: hitPrev}, l.hitTest(3, l.controlsRow))
	assert.Equal(t, hit{kind: hitNext}, l.hitTest(76, l.controlsRow))
	assert.Equal(t, hit{kind: hitDot, index: 1}, l.hitTest(l.dots[1].x, l.controlsRow))
	assert.Equal(t, hit{kind: hitDetails}, l.hitTest(3, l.details.y))
	assert.Equal(t, hit{kind: hitField, index: 2}, l.hitTest(5, l.labelRows[2]+1))
	assert.Equal(t, hit{kind: hitSubmit}, l.hitTest(3, l.submit.y))
	assert.Equal(t, hit{kind: hitNone}, l.hitTest(79, l.details.y))
	assert.Equal(t, l.submit.y+2, l.height)
}

func TestOverlayAt(t *testing.T) {
	base := strings.Join([]string{"aaaaaa", "bbbbbb", "cccccc"}, "\n")
	out := overlayAt(base, "XY\nZW", 2, 1, 6, 3)

	assert.Equal(t, []string{"aaaaaa", "bbXYbb", "ccZWcc"}, splitLines(out))
}
