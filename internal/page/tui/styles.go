package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/vitrine/internal/ui"
	"github.com/muurk/vitrine/internal/version"
)

// Layout constants
const (
	pageMargin = 2 // Columns left of the carousel and form
	headerRows = 2 // Title line plus its bottom border
	footerRows = 2 // Help line plus its top border
	maxInputW  = 48
	minSlideW  = 10
)

// Color palette
var (
	PrimaryColor   = ui.PrimaryColor
	SecondaryColor = ui.SuccessColor
	WarningColor   = ui.WarningColor
	ErrorColor     = ui.ErrorColor
	TextColor      = ui.TextColor
	SubtleColor    = ui.MutedColor
	BorderColor    = ui.PrimaryColor
	DimColor       = lipgloss.Color("240")
)

// Common styles
var (
	// Section heading style
	HeadingStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Caption under each slide
	CaptionStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Label above each form field
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Focused control style
	FocusedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Underline(true)

	// Idle control style
	ControlStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Disabled nav control style (half opacity)
	DisabledStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Faint(true)

	ActiveDotStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	DotStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Focus bar left of the carousel
	FocusBarStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Dialog box style
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Alert box style (blocking validation message)
	AlertBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	// Toast style (transient success notice)
	ToastStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1)

	// Backdrop fill behind the dialog
	BackdropStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)

// Marker glyphs
const (
	dotActive   = "●"
	dotInactive = "○"
	focusBar    = "▌"
	prevLabel   = "‹ Prev"
	nextLabel   = "Next ›"
)

// renderButton renders a bracketed button label
func renderButton(label string, focused bool) string {
	text := "[ " + label + " ]"
	if focused {
		return FocusedStyle.Render(text)
	}
	return ControlStyle.Render(text)
}

// buttonWidth is the rendered width of renderButton's output
func buttonWidth(label string) int {
	return ansi.StringWidth(label) + 4
}

// buildHeaderContent creates the title bar with page title and version
func buildHeaderContent(title string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render("vitrine " + version.Short())

	gap := width - 2 - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left, width-2, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderPageFrame wraps the body in the header and footer bars and fills
// the whole terminal.
func renderPageFrame(title, body, footer string, width, height int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(width).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(width).
		Padding(0, 1)

	bodyHeight := max(height-headerRows-footerRows, 1)
	bodyStyle := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(buildHeaderContent(title, width)),
		bodyStyle.Render(body),
		footerStyle.Render(ansi.Truncate(footer, max(width-2, 0), "")),
	)
}

// overlayAt composites an overlay string on top of a base string at the
// given cell position (x, y). Both are treated as line-based grids.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// dimBackdrop replaces the page with a muted fill so only the overlay stands out
func dimBackdrop(width, height int) string {
	row := BackdropStyle.Render(strings.Repeat("░", max(width, 0)))
	rows := make([]string, max(height, 0))
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fitLine truncates or pads s to exactly width cells
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padRight(ansi.Truncate(s, width, ""), width)
}
