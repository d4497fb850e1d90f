package carousel

// State is the controller's only persistent state.
// Index is always within [0, Count-1] when Count > 0.
type State struct {
	Index int
	Count int
}

// Inert reports whether there is nothing to navigate.
func (s State) Inert() bool {
	return s.Count <= 0
}

// next returns the state after a looping advance
func (s State) next() State {
	s.Index = (s.Index + 1) % s.Count
	return s
}

// previous returns the state after a looping step back
func (s State) previous() State {
	s.Index = (s.Index - 1 + s.Count) % s.Count
	return s
}

// valid reports whether i addresses an existing slide
func (s State) valid(i int) bool {
	return i >= 0 && i < s.Count
}

// RenderState is derived from State and the measured slide width.
// It is never stored.
type RenderState struct {
	Offset       int // Horizontal track offset, zero or negative
	ActiveDot    int
	PrevDisabled bool
	NextDisabled bool
}

// ComputeRenderState derives what the surface should show for s.
func ComputeRenderState(s State, slideWidth, gap int) RenderState {
	return RenderState{
		Offset:       -(s.Index * (slideWidth + gap)),
		ActiveDot:    s.Index,
		PrevDisabled: s.Index == 0,
		NextDisabled: s.Index == s.Count-1,
	}
}
