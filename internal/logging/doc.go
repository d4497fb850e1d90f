// Package logging provides structured logging for vitrine.
//
// This package wraps a zap logger with convenience functions for the events
// the showcase page produces: slide commands, drag gestures, autoplay timer
// transitions, dialog transitions and contact form outcomes.
//
// # Log Levels
//
//   - Debug: Per-command and per-gesture detail, autoplay arm/disarm
//   - Info: Carousel lifecycle, dialog transitions, form outcomes
//   - Warn: Components that disabled themselves at startup
//   - Error: Failures that end the program
//
// # Silent By Default
//
// Nothing is logged until a level is supplied, either through Initialize or
// the VITRINE_LOG_LEVEL environment variable. The TUI runs on the alternate
// screen, so it logs to a file:
//
//	if err := logging.Initialize("debug", "/tmp/vitrine.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Privacy
//
// Contact form values are never passed to the logger; LogFormSubmit only
// records whether a submission was accepted and which rule rejected it.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are not and should run before the program starts.
package logging
