// Package dialog implements the open/closed state machine behind the
// showcase page's modal dialog.
//
// The controller knows nothing about rendering. It tracks whether the dialog
// is open, whether page scrolling is locked, and which of the dialog's
// focusable controls holds focus. While open, Tab and Shift+Tab cycle
// through those controls only.
//
// A nil *Controller is valid and does nothing, so a page whose dialog could
// not be built keeps working without it.
package dialog
