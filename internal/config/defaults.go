package config

import "github.com/muurk/vitrine/internal/carousel"

// Default page settings
const (
	DefaultAutoplayDelayMS  = 5000
	DefaultSlideHeight      = 12
	DefaultTouchStep        = 10
	DefaultTouchSettleMS    = 150
	DefaultResizeDebounceMS = 250
	DefaultToastLifetimeMS  = 3000
	DefaultTitle            = "Vitrine"
)

// NewConfig creates a Config with default values and the demo deck.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Carousel: CarouselSettings{
			AutoplayDelayMS: DefaultAutoplayDelayMS,
			Gap:             carousel.DefaultGap,
			DragThreshold:   carousel.DefaultDragThreshold,
			SlideHeight:     DefaultSlideHeight,
			TouchStep:       DefaultTouchStep,
			TouchSettleMS:   DefaultTouchSettleMS,
			ShowDots:        true,
			ShowNav:         true,
		},
		Page: PageSettings{
			Title:            DefaultTitle,
			ResizeDebounceMS: DefaultResizeDebounceMS,
			ToastLifetimeMS:  DefaultToastLifetimeMS,
		},
		Slides: DefaultSlides(),
		Dialog: DialogCopy{
			Title: "About this page",
			Body: "Vitrine is a small showcase: a slide carousel, this dialog and a " +
				"contact form. Nothing you type leaves your terminal.",
		},
	}
}

// DefaultSlides returns the demo deck.
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title:   "Welcome",
			Body:    "# Welcome\n\nUse **←/→** while the carousel has focus, click the dots, or drag across the slide.",
			Caption: "Slides advance on their own every few seconds.",
		},
		{
			Title:   "Swipe",
			Body:    "# Swipe\n\nDrag with the mouse or swipe sideways on a trackpad. Short drags are ignored.",
			Caption: "Hovering pauses autoplay.",
		},
		{
			Title:   "Details",
			Body:    "# Details\n\nPress `o` or choose *Open details* to read more in a dialog.",
			Caption: "Esc or a click outside closes it.",
		},
		{
			Title:   "Contact",
			Body:    "# Get in touch\n\nFill in the form below. Name and email are required.",
			Caption: "Nothing is sent anywhere.",
		},
	}
}
