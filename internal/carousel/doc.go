// Package carousel implements the slide controller behind the showcase
// page's carousel.
//
// The controller owns a single piece of state, the current slide index and the
// slide count, and funnels every navigation request through one mutator.
// Requests come from four independent producers:
//
//   - nav buttons and dot indicators (ButtonCommand, DotCommand)
//   - the keyboard (KeyCommand)
//   - touch swipes and mouse drags (DragSource, one per channel)
//   - the autoplay timer, which issues Next on every tick
//
// Each producer is a plain function or small value type that turns raw
// gesture data into at most one Command, so gesture interpretation can be
// tested without a display surface.
//
// # Render Surface
//
// The controller never draws. It pushes a RenderState to the surface
// contracts it was given:
//
//	track.SetOffset(-(index * (slideWidth + gap)))
//	dot.SetActive(i == index); dot.SetSelected(i == index)
//	prev.SetDisabled(index == 0); next.SetDisabled(index == count-1)
//
// Slide width is measured from the track on every render, so a resized
// surface is picked up by the next Render call.
//
// # Autoplay
//
// Autoplay is driven through the Timer contract. ArmAutoplay always disarms
// first, so at most one scheduled tick is ever live. Every applied command
// resets the timer.
//
// # Failure Modes
//
// A controller built without a track, or initialized with zero slides, is
// inert: every operation is a no-op and no timer is armed. Out-of-range GoTo
// requests are ignored.
//
// # Thread Safety
//
// A Controller is not safe for concurrent use. It is meant to be driven from
// a single event loop (the Bubble Tea update loop in this repository), which
// serializes gesture callbacks and timer ticks.
package carousel
