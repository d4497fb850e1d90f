package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/vitrine/internal/config"
)

// focusTarget is a stop in the page's tab order.
type focusTarget int

const (
	focusCarousel focusTarget = iota
	focusPrev
	focusNext
	focusDetails
	focusName
	focusEmail
	focusPhone
	focusMessage
	focusSubmit
)

// withinCarousel reports whether arrow keys belong to the carousel
func (f focusTarget) withinCarousel() bool {
	return f == focusCarousel || f == focusPrev || f == focusNext
}

// field returns the form field index for a field target
func (f focusTarget) field() (int, bool) {
	if f >= focusName && f <= focusMessage {
		return int(f - focusName), true
	}
	return 0, false
}

func fieldTarget(i int) focusTarget {
	return focusName + focusTarget(i)
}

// Button labels
const (
	detailsLabel = "Open details"
	submitLabel  = "Send"
	contactLabel = "Contact us"
	closeLabel   = "Close"
	formHeading  = "Contact us"
)

// rect is a cell rectangle.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// hitKind says what a click landed on
type hitKind int

const (
	hitNone hitKind = iota
	hitSlide
	hitPrev
	hitNext
	hitDot
	hitDetails
	hitField
	hitSubmit
)

type hit struct {
	kind  hitKind
	index int
}

// pageLayout places every control of the scrollable body. Rows are body
// content rows, before viewport scrolling.
type pageLayout struct {
	slide       rect
	controlsRow int
	prev        rect
	next        rect
	dots        []rect
	details     rect
	headingRow  int
	labelRows   []int
	fields      []rect
	submit      rect
	height      int
}

// computeLayout lays the body out for a slide strip of slideW x slideH
func computeLayout(width, slideW, slideH, dotCount int, showNav bool, fieldCount int) pageLayout {
	l := pageLayout{}

	l.slide = rect{x: pageMargin, y: 1, w: slideW, h: slideH}
	l.controlsRow = l.slide.y + slideH

	if showNav {
		l.prev = rect{x: pageMargin, y: l.controlsRow, w: ansi.StringWidth(prevLabel), h: 1}
		nw := ansi.StringWidth(nextLabel)
		l.next = rect{x: pageMargin + slideW - nw, y: l.controlsRow, w: nw, h: 1}
	}
	start := pageMargin + dotsStart(dotCount, slideW)
	for i := 0; i < dotCount; i++ {
		l.dots = append(l.dots, rect{x: start + 2*i, y: l.controlsRow, w: 1, h: 1})
	}

	l.details = rect{x: pageMargin, y: l.controlsRow + 2, w: buttonWidth(detailsLabel), h: 1}
	l.headingRow = l.details.y + 2

	inputW := inputWidth(width)
	for i := 0; i < fieldCount; i++ {
		label := l.headingRow + 1 + 2*i
		l.labelRows = append(l.labelRows, label)
		l.fields = append(l.fields, rect{x: pageMargin, y: label, w: inputW, h: 2})
	}

	l.submit = rect{x: pageMargin, y: l.headingRow + 2 + 2*fieldCount, w: buttonWidth(submitLabel), h: 1}
	l.height = l.submit.y + 2
	return l
}

// carouselRegion is where hover and swipes count: slides plus controls
func (l pageLayout) carouselRegion() rect {
	r := l.slide
	r.h++
	return r
}

// hitTest maps a body cell to the control under it
func (l pageLayout) hitTest(x, y int) hit {
	switch {
	case l.prev.contains(x, y):
		return hit{kind: hitPrev}
	case l.next.contains(x, y):
		return hit{kind: hitNext}
	case l.slide.contains(x, y):
		return hit{kind: hitSlide}
	case l.details.contains(x, y):
		return hit{kind: hitDetails}
	case l.submit.contains(x, y):
		return hit{kind: hitSubmit}
	}
	for i, d := range l.dots {
		if d.contains(x, y) {
			return hit{kind: hitDot, index: i}
		}
	}
	for i, f := range l.fields {
		if f.contains(x, y) {
			return hit{kind: hitField, index: i}
		}
	}
	return hit{kind: hitNone}
}

// rowFor returns the body row that shows a focus target
func (l pageLayout) rowFor(f focusTarget) int {
	if i, ok := f.field(); ok && i < len(l.fields) {
		return l.fields[i].y + 1
	}
	switch f {
	case focusPrev, focusNext:
		return l.controlsRow
	case focusDetails:
		return l.details.y
	case focusSubmit:
		return l.submit.y
	}
	return l.slide.y
}

// slideWidthFor is the live slide width for a terminal width
func slideWidthFor(width int) int {
	return max(width-2*pageMargin, minSlideW)
}

// inputWidth is the width of the form inputs for a terminal width
func inputWidth(width int) int {
	return max(min(maxInputW, width-2*pageMargin), minSlideW)
}

// bodyHeightFor is the viewport height for a terminal height
func bodyHeightFor(height int) int {
	return max(height-headerRows-footerRows, 1)
}

// dialogLayout places the details dialog on screen
type dialogLayout struct {
	box     rect
	contact rect
	close   rect
	view    string
}

// computeDialog renders the dialog box and centres it in width x height
func computeDialog(dc config.DialogCopy, focused string, width, height int) dialogLayout {
	innerW := max(min(56, width-10), 20)

	title := HeadingStyle.Render(ansi.Truncate(dc.Title, innerW, "…"))
	body := lipgloss.NewStyle().Width(innerW).Render(dc.Body)
	buttons := renderButton(contactLabel, focused == dialogContact) + "  " +
		renderButton(closeLabel, focused == dialogClose)

	view := DialogBoxStyle.Width(innerW + 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", buttons),
	)

	boxW, boxH := lipgloss.Width(view), lipgloss.Height(view)
	x0 := max((width-boxW)/2, 0)
	y0 := max((height-boxH)/2, 0)

	// border + top padding + title + blank + body + blank
	buttonsRow := y0 + 1 + 1 + 1 + 1 + lipgloss.Height(body) + 1
	// border + left padding
	buttonsCol := x0 + 1 + 2
	contactW := buttonWidth(contactLabel)

	return dialogLayout{
		box:     rect{x: x0, y: y0, w: boxW, h: boxH},
		contact: rect{x: buttonsCol, y: buttonsRow, w: contactW, h: 1},
		close:   rect{x: buttonsCol + contactW + 2, y: buttonsRow, w: buttonWidth(closeLabel), h: 1},
		view:    view,
	}
}

// target maps a screen cell to the dialog region under it
func (d dialogLayout) target(x, y int) string {
	switch {
	case d.contact.contains(x, y):
		return dialogContact
	case d.close.contains(x, y):
		return dialogClose
	case d.box.contains(x, y):
		return dialogContent
	}
	return dialogBackdrop
}

// Dialog controls, in focus order, plus the two non-control regions
const (
	dialogContact  = "contact"
	dialogClose    = "close"
	dialogContent  = "content"
	dialogBackdrop = "backdrop"
)
