// Package tui implements the vitrine page as a Bubble Tea program.
//
// The page stacks three parts in a scrollable body: a slide carousel, a
// button that opens a details dialog, and a contact form. State lives in
// the domain packages; this package owns the terminal side of it.
//
// # Carousel
//
// carouselView is the carousel's render surface. It lays every slide out
// in one horizontal strip, separated by gap columns, and shows the window
// of the strip selected by the controller's offset. Slide bodies are
// markdown rendered with glamour at the live slide width.
//
// Autoplay runs on tickTimer, which turns Arm and Disarm into tea.Tick
// commands tagged with a generation number. Ticks from a cancelled
// generation are dropped when they arrive.
//
// # Input
//
//   - Keyboard: tab and shift+tab move focus; arrows drive the carousel
//     while it or its nav controls have focus; enter activates buttons.
//   - Mouse: left-button drags on a slide are the mouse drag channel;
//     clicks hit nav controls, dots and buttons; plain motion gives hover.
//   - Trackpad: horizontal wheel events are the touch drag channel. A
//     swipe ends once the wheel has been idle for the settle delay.
//
// Window resizes re-render the carousel after a debounce. Losing terminal
// focus cancels unfinished drags.
//
// # Startup
//
// Nothing is initialized until the first tea.WindowSizeMsg, which is when
// the slide width becomes measurable.
//
// # Overlays
//
// The details dialog, the validation alert and the success toast are
// composited over the page. While the dialog is up the page does not
// scroll; while the alert is up all input except dismissing it is ignored.
package tui
