package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/vitrine/internal/carousel"
	"github.com/muurk/vitrine/internal/config"
	"github.com/muurk/vitrine/internal/contact"
	"github.com/muurk/vitrine/internal/dialog"
	"github.com/muurk/vitrine/internal/logging"
)

// Lines scrolled per wheel notch
const wheelScrollLines = 3

// PageModel is the top-level model for the page.
type PageModel struct {
	cfg *config.Config

	// UI state
	Width  int
	Height int
	ready  bool // Set by the first WindowSizeMsg

	// Carousel
	carousel  *carousel.Controller
	view      *carouselView
	timer     *tickTimer
	resizeGen uint64
	touchGen  uint64
	touchX    int

	// Dialog and form
	dialog      *dialog.Controller
	form        *contactForm
	lastInvalid string

	focus    focusTarget
	viewport viewport.Model

	// Help
	Help       help.Model
	Keys       pageKeyMap
	DialogKeys dialogKeyMap
	AlertKeys  alertKeyMap
}

// NewPageModel creates the page for cfg. A nil cfg uses the defaults.
func NewPageModel(cfg *config.Config) PageModel {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	view := newCarouselView(cfg.Slides, minSlideW, cfg.Carousel.SlideHeight, cfg.Carousel.Gap)

	// A nil timer leaves the controller without autoplay
	timer := newTickTimer()
	var t carousel.Timer = timer
	if cfg.Carousel.DisableAutoplay {
		t = nil
	}
	ctrl := carousel.New(view, t, cfg.Carousel.Options())
	timer.bind(ctrl.ID())

	return PageModel{
		cfg:        cfg,
		carousel:   ctrl,
		view:       view,
		timer:      timer,
		dialog:     dialog.New(dialogContact, dialogClose),
		form:       newContactForm(0),
		focus:      focusCarousel,
		viewport:   viewport.New(0, 0),
		Help:       help.New(),
		Keys:       newPageKeyMap(),
		DialogKeys: newDialogKeyMap(),
		AlertKeys:  newAlertKeyMap(),
	}
}

// Carousel exposes the page's slide controller.
func (m PageModel) Carousel() *carousel.Controller {
	return m.carousel
}

// Init implements tea.Model
func (m PageModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.Page.Title)
}

// Update handles all messages and routes them to the focused part of the page
func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Nothing runs until the page has a size
	if !m.ready {
		return m, nil
	}

	switch msg := msg.(type) {
	case autoplayTickMsg:
		if m.timer.fire(msg) {
			m.carousel.Next()
		}
		return m, m.timer.take()

	case touchSettledMsg:
		if msg.carousel == m.carousel.ID() && msg.gen == m.touchGen {
			m.carousel.DragEnd(carousel.ChannelTouch, m.touchX)
		}
		return m, m.timer.take()

	case resizeSettledMsg:
		if msg.gen == m.resizeGen {
			m.view.setWidth(slideWidthFor(m.Width))
			m.carousel.Render()
			m.ensureVisible()
		}
		return m, nil

	case toastExpiredMsg:
		m.form.expireToast(msg.gen)
		return m, nil

	case tea.BlurMsg:
		// No leave event arrives once the terminal loses focus
		m.cancelDrags()
		m.carousel.PointerLeave()
		return m, m.timer.take()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and friends go to the focused input
	if i, ok := m.focus.field(); ok {
		return m, m.form.update(i, msg)
	}
	return m, nil
}

// handleResize applies a new terminal size. The first one initializes the
// carousel; later ones re-render it after the debounce delay.
func (m PageModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.viewport.Width = msg.Width
	m.viewport.Height = bodyHeightFor(msg.Height)
	m.Help.Width = max(msg.Width-2, 0)
	m.form.setWidth(msg.Width)

	if !m.ready {
		m.ready = true
		m.view.setWidth(slideWidthFor(msg.Width))
		m.initCarousel()
		m.ensureVisible()
		return m, m.timer.take()
	}

	m.resizeGen++
	m.ensureVisible()
	return m, after(m.cfg.Page.ResizeDebounce(), resizeSettledMsg{gen: m.resizeGen})
}

// initCarousel wires the optional controls and starts the controller
func (m PageModel) initCarousel() {
	var dots carousel.DotContainer
	if m.cfg.Carousel.ShowDots {
		dots = m.view
	}
	var prev, next carousel.NavControl
	if m.cfg.Carousel.ShowNav {
		prev, next = m.view.prev, m.view.next
	}
	m.carousel.Init(len(m.cfg.Slides), dots, prev, next)
}

// cancelDrags drops unfinished gestures on both channels
func (m *PageModel) cancelDrags() {
	m.touchGen++
	m.carousel.DragCancel(carousel.ChannelTouch)
	m.carousel.DragCancel(carousel.ChannelMouse)
}

// handleKey routes a key press: alert first, then dialog, then the page
func (m PageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.alert != "" {
		return m.updateAlert(msg)
	}
	if m.dialog.IsOpen() {
		return m.updateDialog(msg)
	}

	k := msg.String()
	switch k {
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	}

	// Text fields take every other key; enter submits like a form would
	if i, ok := m.focus.field(); ok {
		if k == "enter" {
			return m.submitForm()
		}
		return m, m.form.update(i, msg)
	}

	if m.carousel.HandleKey(k, m.focus.withinCarousel()) {
		return m, m.timer.take()
	}

	switch {
	case key.Matches(msg, m.Keys.Activate):
		return m.activate(m.focus, "key")
	case key.Matches(msg, m.Keys.Open):
		m.openDialog("key")
		return m, m.timer.take()
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Scroll):
		m.scrollKey(k)
	}
	return m, nil
}

// updateAlert handles keys while the alert is up. Everything except
// dismissing it is ignored.
func (m PageModel) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.AlertKeys.Dismiss) {
		return m, nil
	}
	m.form.dismissAlert()

	// Send the user back to the field that failed
	if i := fieldIndex(m.lastInvalid); i >= 0 {
		return m, m.setFocus(fieldTarget(i))
	}
	return m, nil
}

// updateDialog handles keys while the dialog is open. Focus stays inside.
func (m PageModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.HandleKey(msg.String()) {
		if !m.dialog.IsOpen() {
			return m, m.setFocus(focusDetails)
		}
		return m, nil
	}
	if key.Matches(msg, m.DialogKeys.Activate) {
		return m.activateDialog(m.dialog.Focused())
	}
	return m, nil
}

// activateDialog presses a dialog control
func (m PageModel) activateDialog(control string) (tea.Model, tea.Cmd) {
	switch control {
	case dialogContact:
		m.dialog.Close(dialogContact)
		return m, m.setFocus(focusName)
	case dialogClose:
		m.dialog.Click(dialog.TargetClose)
		return m, m.setFocus(focusDetails)
	}
	return m, nil
}

// activate presses the control behind a focus target
func (m PageModel) activate(f focusTarget, trigger string) (tea.Model, tea.Cmd) {
	switch f {
	case focusPrev:
		if !m.view.prev.disabled {
			m.carousel.PressButton(carousel.ButtonPrev)
		}
	case focusNext:
		if !m.view.next.disabled {
			m.carousel.PressButton(carousel.ButtonNext)
		}
	case focusDetails:
		m.openDialog(trigger)
	case focusSubmit:
		return m.submitForm()
	}
	return m, m.timer.take()
}

// openDialog shows the details dialog
func (m *PageModel) openDialog(trigger string) {
	if m.dialog.Open(trigger) {
		m.cancelDrags()
		m.form.blurAll()
	}
}

// submitForm runs the contact handler and raises the alert or the toast
func (m PageModel) submitForm() (tea.Model, tea.Cmd) {
	out, gen := m.form.submit()
	if !out.Accepted() {
		m.lastInvalid = ""
		if ve, ok := contact.AsValidationError(out.Err); ok {
			m.lastInvalid = ve.Field
		}
		return m, nil
	}

	m.lastInvalid = ""
	logging.Debug("Contact form cleared", zap.Uint64("toast", gen))
	return m, after(m.cfg.Page.ToastLifetime(), toastExpiredMsg{gen: gen})
}

// focusOrder lists the tab stops, skipping hidden nav controls
func (m PageModel) focusOrder() []focusTarget {
	order := []focusTarget{focusCarousel}
	if m.cfg.Carousel.ShowNav && m.carousel.Active() {
		order = append(order, focusPrev, focusNext)
	}
	order = append(order, focusDetails)
	for i := range m.form.inputs {
		order = append(order, fieldTarget(i))
	}
	return append(order, focusSubmit)
}

// moveFocus moves along the tab order, wrapping at both ends
func (m *PageModel) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
			break
		}
	}
	n := len(order)
	return m.setFocus(order[((cur+delta)%n+n)%n])
}

// setFocus focuses a target and scrolls it into view
func (m *PageModel) setFocus(f focusTarget) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	if i, ok := f.field(); ok {
		cmd = m.form.focus(i)
	} else {
		m.form.blurAll()
	}
	m.ensureVisible()
	return cmd
}

// layout computes the body geometry for the current size
func (m PageModel) layout() pageLayout {
	return computeLayout(m.Width, m.view.width, m.view.height, len(m.view.dots), m.cfg.Carousel.ShowNav, len(m.form.inputs))
}

// ensureVisible scrolls the focused control into the viewport
func (m *PageModel) ensureVisible() {
	l := m.layout()
	m.viewport.SetContent(m.renderBody(l))
	row := l.rowFor(m.focus)
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

// scrollKey scrolls the page for a scroll key
func (m *PageModel) scrollKey(k string) {
	switch k {
	case "up":
		m.scroll(-1)
	case "down":
		m.scroll(1)
	case "pgup":
		m.scroll(-m.viewport.Height)
	case "pgdown":
		m.scroll(m.viewport.Height)
	}
}

// scroll moves the page by n lines unless the dialog holds the scroll lock
func (m *PageModel) scroll(n int) {
	if m.dialog.ScrollLocked() {
		return
	}
	m.viewport.SetContent(m.renderBody(m.layout()))
	m.viewport.SetYOffset(m.viewport.YOffset + n)
}

// handleMouse routes a mouse event: alert first, then dialog, then the page
func (m PageModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.form.alert != "" {
		return m, nil
	}
	if m.dialog.IsOpen() {
		return m.mouseDialog(msg)
	}

	l := m.layout()
	bodyTop := headerRows
	inBody := msg.Y >= bodyTop && msg.Y < bodyTop+m.viewport.Height
	cx, cy := msg.X, msg.Y-bodyTop+m.viewport.YOffset

	// An active mouse drag owns motion and release wherever they happen
	if m.carousel.DragSession(carousel.ChannelMouse).Active {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.carousel.DragMove(carousel.ChannelMouse, msg.X)
			return m, nil
		case tea.MouseActionRelease:
			m.carousel.DragEnd(carousel.ChannelMouse, msg.X)
			return m, m.timer.take()
		case tea.MouseActionPress:
			// The release was lost; the old session is abandoned
			if msg.Button == tea.MouseButtonLeft {
				m.carousel.DragCancel(carousel.ChannelMouse)
			}
		}
	}

	inCarousel := inBody && l.carouselRegion().contains(cx, cy)

	// Motion with no button held is hover
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		if inCarousel {
			m.carousel.PointerEnter()
		} else {
			m.carousel.PointerLeave()
		}
		return m, m.timer.take()
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inBody {
			m.scroll(-wheelScrollLines)
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		if inBody {
			m.scroll(wheelScrollLines)
		}
		return m, nil

	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		if !inCarousel {
			return m, nil
		}
		dir := 1
		if msg.Button == tea.MouseButtonWheelRight {
			dir = -1
		}
		return m.swipe(msg.X, dir)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || !inBody {
			return m, nil
		}
		return m.click(l.hitTest(cx, cy), msg.X)
	}

	return m, nil
}

// click handles a left press on a body control
func (m PageModel) click(h hit, x int) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch h.kind {
	case hitSlide:
		cmd = m.setFocus(focusCarousel)
		m.carousel.DragBegin(carousel.ChannelMouse, x)
	case hitPrev:
		m.setFocus(focusPrev)
		return m.activate(focusPrev, "click")
	case hitNext:
		m.setFocus(focusNext)
		return m.activate(focusNext, "click")
	case hitDot:
		m.carousel.SelectDot(h.index)
	case hitDetails:
		m.setFocus(focusDetails)
		return m.activate(focusDetails, "click")
	case hitField:
		cmd = m.setFocus(fieldTarget(h.index))
	case hitSubmit:
		m.setFocus(focusSubmit)
		return m.submitForm()
	}
	return m, tea.Batch(cmd, m.timer.take())
}

// swipe feeds one horizontal wheel event into the touch drag channel. The
// session ends once the wheel has been idle for the settle delay.
func (m PageModel) swipe(x, dir int) (tea.Model, tea.Cmd) {
	if !m.carousel.Active() {
		return m, nil
	}
	if !m.carousel.DragSession(carousel.ChannelTouch).Active {
		m.touchX = x
		m.carousel.DragBegin(carousel.ChannelTouch, x)
	}
	m.touchX += dir * m.cfg.Carousel.TouchStep
	m.carousel.DragMove(carousel.ChannelTouch, m.touchX)

	m.touchGen++
	settle := after(m.cfg.Carousel.TouchSettle(), touchSettledMsg{carousel: m.carousel.ID(), gen: m.touchGen})
	return m, tea.Batch(settle, m.timer.take())
}

// mouseDialog handles mouse input while the dialog is open
func (m PageModel) mouseDialog(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	d := computeDialog(m.cfg.Dialog, m.dialog.Focused(), m.Width, m.Height)
	switch target := d.target(msg.X, msg.Y); target {
	case dialogContact, dialogClose:
		m.dialog.FocusControl(target)
		return m.activateDialog(target)
	case dialogContent:
		m.dialog.Click(dialog.TargetContent)
	case dialogBackdrop:
		if m.dialog.Click(dialog.TargetBackdrop) {
			return m, m.setFocus(focusDetails)
		}
	}
	return m, nil
}

// renderBody renders the scrollable page body
func (m PageModel) renderBody(l pageLayout) string {
	lines := make([]string, l.height)
	indent := strings.Repeat(" ", pageMargin)

	bar := indent
	if m.focus == focusCarousel {
		bar = strings.Repeat(" ", pageMargin-1) + FocusBarStyle.Render(focusBar)
	}
	for i, row := range splitLines(m.view.View()) {
		if r := l.slide.y + i; r < len(lines) {
			lines[r] = bar + row
		}
	}

	if m.cfg.Carousel.ShowNav || len(m.view.dots) > 0 {
		lines[l.controlsRow] = indent + m.view.controlsView(m.cfg.Carousel.ShowNav, m.focus)
	}

	lines[l.details.y] = indent + renderButton(detailsLabel, m.focus == focusDetails)
	lines[l.headingRow] = indent + HeadingStyle.Render(formHeading)

	for i, ti := range m.form.inputs {
		label := LabelStyle.Render(formFields[i].label)
		if m.focus == fieldTarget(i) {
			label = FocusedStyle.Render(formFields[i].label)
		}
		lines[l.labelRows[i]] = indent + label
		lines[l.labelRows[i]+1] = indent + ti.View()
	}

	lines[l.submit.y] = indent + renderButton(submitLabel, m.focus == focusSubmit)
	return strings.Join(lines, "\n")
}

// helpView renders the context-sensitive footer
func (m PageModel) helpView() string {
	switch {
	case m.form.alert != "":
		return m.Help.View(m.AlertKeys)
	case m.dialog.IsOpen():
		return m.Help.View(m.DialogKeys)
	}
	return m.Help.View(m.Keys)
}

// View renders the page
func (m PageModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	vp := m.viewport
	vp.SetContent(m.renderBody(m.layout()))
	page := renderPageFrame(m.cfg.Page.Title, vp.View(), m.helpView(), m.Width, m.Height)

	if m.form.toast != "" {
		toast := ToastStyle.Render(m.form.toast)
		x := max(m.Width-lipgloss.Width(toast)-1, 0)
		y := max(m.Height-footerRows-lipgloss.Height(toast), 0)
		page = overlayAt(page, toast, x, y, m.Width, m.Height)
	}

	if m.dialog.IsOpen() {
		d := computeDialog(m.cfg.Dialog, m.dialog.Focused(), m.Width, m.Height)
		page = overlayAt(dimBackdrop(m.Width, m.Height), d.view, d.box.x, d.box.y, m.Width, m.Height)
	}

	if m.form.alert != "" {
		alert := AlertBoxStyle.Render(m.form.alert + "\n\n" + renderButton("OK", true))
		x := max((m.Width-lipgloss.Width(alert))/2, 0)
		y := max((m.Height-lipgloss.Height(alert))/2, 0)
		page = overlayAt(page, alert, x, y, m.Width, m.Height)
	}

	return page
}

// Run starts the page as a full-screen program.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(
		NewPageModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
