package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/muurk/vitrine/internal/carousel"
	"github.com/muurk/vitrine/internal/config"
	"github.com/muurk/vitrine/internal/logging"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown renders body at width, falling back to the raw text
func renderMarkdown(body string, width int) string {
	renderer, err := getRenderer(width)
	if err == nil {
		out, rerr := renderer.Render(body)
		if rerr == nil {
			return strings.Trim(out, "\n")
		}
		err = rerr
	}
	logging.Warn("Markdown render failed, showing raw slide body", zap.Error(err))
	return lipgloss.NewStyle().Width(width).Render(body)
}

// carouselView is the carousel's render surface: the track, the dot
// strip and the two nav controls.
type carouselView struct {
	slides []config.Slide
	width  int // Live slide width in cells
	height int // Slide height in rows
	gap    int
	offset int

	dots []*dotView
	prev *navView
	next *navView

	stripWidth int
	strip      []string
}

func newCarouselView(slides []config.Slide, width, height, gap int) *carouselView {
	return &carouselView{
		slides: slides,
		width:  max(width, minSlideW),
		height: max(height, 1),
		gap:    max(gap, 0),
		prev:   &navView{button: carousel.ButtonPrev, label: prevLabel},
		next:   &navView{button: carousel.ButtonNext, label: nextLabel},
	}
}

// SlideWidth implements carousel.Track.
func (v *carouselView) SlideWidth() int {
	return v.width
}

// SetOffset implements carousel.Track.
func (v *carouselView) SetOffset(offset int) {
	v.offset = offset
}

// AddDot implements carousel.DotContainer.
func (v *carouselView) AddDot(index int) carousel.Dot {
	d := &dotView{index: index}
	v.dots = append(v.dots, d)
	return d
}

// setWidth changes the live slide width. The new width is only visible to
// the controller on its next render.
func (v *carouselView) setWidth(width int) bool {
	width = max(width, minSlideW)
	if width == v.width {
		return false
	}
	v.width = width
	return true
}

// stripRows lays every slide out side by side, gap columns apart
func (v *carouselView) stripRows() []string {
	if v.strip != nil && v.stripWidth == v.width {
		return v.strip
	}

	gap := strings.Repeat(" ", v.gap)
	blocks := make([][]string, len(v.slides))
	for i, s := range v.slides {
		blocks[i] = renderSlide(s, v.width, v.height)
	}

	rows := make([]string, v.height)
	for r := range rows {
		var b strings.Builder
		for i, block := range blocks {
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(block[r])
		}
		rows[r] = b.String()
	}

	v.strip = rows
	v.stripWidth = v.width
	return rows
}

// renderSlide renders one slide as exactly height rows of width cells
func renderSlide(s config.Slide, width, height int) []string {
	bodyRows := height
	if s.Caption != "" && height > 1 {
		bodyRows--
	}

	body := s.Body
	if body == "" {
		body = "# " + s.Title
	}
	lines := splitLines(renderMarkdown(body, width))

	rows := make([]string, 0, height)
	for i := 0; i < bodyRows; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, fitLine(line, width))
	}
	if len(rows) < height {
		caption := lipgloss.PlaceHorizontal(width, lipgloss.Center, CaptionStyle.Render(s.Caption))
		rows = append(rows, fitLine(caption, width))
	}
	return rows
}

// View returns the visible window of the strip
func (v *carouselView) View() string {
	if len(v.slides) == 0 {
		placeholder := lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			CaptionStyle.Render("No slides to show."))
		return placeholder
	}

	left := -v.offset
	rows := v.stripRows()
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = fitLine(ansi.Cut(row, left, left+v.width), v.width)
	}
	return strings.Join(out, "\n")
}

// controlsView renders the nav controls and dots as one row of width cells
func (v *carouselView) controlsView(showNav bool, focus focusTarget) string {
	var b strings.Builder
	used := 0

	if showNav {
		b.WriteString(v.prev.render(focus == focusPrev))
		used += ansi.StringWidth(v.prev.label)
	}

	if n := len(v.dots); n > 0 {
		start := dotsStart(n, v.width)
		if start > used {
			b.WriteString(strings.Repeat(" ", start-used))
			used = start
		}
		for i, d := range v.dots {
			if i > 0 {
				b.WriteString(" ")
				used++
			}
			b.WriteString(d.render())
			used++
		}
	}

	if showNav {
		start := v.width - ansi.StringWidth(v.next.label)
		if start > used {
			b.WriteString(strings.Repeat(" ", start-used))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(v.next.render(focus == focusNext))
	}

	return fitLine(b.String(), v.width)
}

// dotsStart is the column of the first dot, centred in width
func dotsStart(n, width int) int {
	return max((width-(2*n-1))/2, 0)
}

// activeIndex returns the index of the active dot, or -1
func (v *carouselView) activeIndex() int {
	for _, d := range v.dots {
		if d.active {
			return d.index
		}
	}
	return -1
}

// dotView implements carousel.Dot.
type dotView struct {
	index    int
	active   bool
	selected bool
}

func (d *dotView) SetActive(on bool)   { d.active = on }
func (d *dotView) SetSelected(on bool) { d.selected = on }

func (d *dotView) render() string {
	if d.active {
		return ActiveDotStyle.Render(dotActive)
	}
	return DotStyle.Render(dotInactive)
}

// navView implements carousel.NavControl.
type navView struct {
	button     carousel.Button
	label      string
	disabled   bool
	affordance carousel.Affordance
}

func (n *navView) SetDisabled(disabled bool)           { n.disabled = disabled }
func (n *navView) SetAffordance(a carousel.Affordance) { n.affordance = a }

func (n *navView) render(focused bool) string {
	switch {
	case n.affordance.Opacity < 1:
		return DisabledStyle.Render(n.label)
	case focused:
		return FocusedStyle.Render(n.label)
	default:
		return ControlStyle.Render(n.label)
	}
}
