package config

import (
	"fmt"
	"time"

	"github.com/muurk/vitrine/internal/carousel"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version  int              `yaml:"version"`
	Carousel CarouselSettings `yaml:"carousel"`
	Page     PageSettings     `yaml:"page"`
	Slides   []Slide          `yaml:"slides"`
	Dialog   DialogCopy       `yaml:"dialog"`
}

// CarouselSettings holds carousel timings and geometry.
type CarouselSettings struct {
	AutoplayDelayMS int  `yaml:"autoplay_delay_ms"`
	Gap             int  `yaml:"gap"`
	DragThreshold   int  `yaml:"drag_threshold"`
	SlideHeight     int  `yaml:"slide_height"`
	TouchStep       int  `yaml:"touch_step"`      // Cells of travel per horizontal wheel event
	TouchSettleMS   int  `yaml:"touch_settle_ms"` // Idle time that ends a wheel swipe
	ShowDots        bool `yaml:"show_dots"`
	ShowNav         bool `yaml:"show_nav"`
	DisableAutoplay bool `yaml:"disable_autoplay,omitempty"`
}

// PageSettings holds page-level timings.
type PageSettings struct {
	Title            string `yaml:"title"`
	ResizeDebounceMS int    `yaml:"resize_debounce_ms"`
	ToastLifetimeMS  int    `yaml:"toast_lifetime_ms"`
}

// Slide is one panel of the carousel. Body is markdown.
type Slide struct {
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	Caption string `yaml:"caption,omitempty"`
}

// DialogCopy is the text shown in the details dialog.
type DialogCopy struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Options converts the settings into carousel construction options.
func (c CarouselSettings) Options() carousel.Options {
	return carousel.Options{
		AutoplayDelay: Millis(c.AutoplayDelayMS),
		Gap:           c.Gap,
		DragThreshold: c.DragThreshold,
	}
}

// TouchSettle returns the wheel swipe idle timeout.
func (c CarouselSettings) TouchSettle() time.Duration {
	return Millis(c.TouchSettleMS)
}

// ResizeDebounce returns the delay between the last resize and a re-render.
func (p PageSettings) ResizeDebounce() time.Duration {
	return Millis(p.ResizeDebounceMS)
}

// ToastLifetime returns how long transient notices stay up.
func (p PageSettings) ToastLifetime() time.Duration {
	return Millis(p.ToastLifetimeMS)
}

// Millis converts a millisecond count to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate rejects settings that cannot drive the page.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"carousel.autoplay_delay_ms", c.Carousel.AutoplayDelayMS, 0},
		{"carousel.gap", c.Carousel.Gap, 0},
		{"carousel.drag_threshold", c.Carousel.DragThreshold, 0},
		{"carousel.slide_height", c.Carousel.SlideHeight, 1},
		{"carousel.touch_step", c.Carousel.TouchStep, 1},
		{"carousel.touch_settle_ms", c.Carousel.TouchSettleMS, 0},
		{"page.resize_debounce_ms", c.Page.ResizeDebounceMS, 0},
		{"page.toast_lifetime_ms", c.Page.ToastLifetimeMS, 0},
	}
	for _, chk := range checks {
		if chk.value < chk.min {
			if chk.min == 0 {
				return fmt.Errorf("%s must not be negative, got %d", chk.name, chk.value)
			}
			return fmt.Errorf("%s must be at least %d, got %d", chk.name, chk.min, chk.value)
		}
	}

	for i, s := range c.Slides {
		if s.Title == "" && s.Body == "" {
			return fmt.Errorf("slide %d is empty (needs a title or body)", i+1)
		}
	}

	return nil
}
