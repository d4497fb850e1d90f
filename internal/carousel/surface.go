package carousel

//go:generate mockgen -source=surface.go -destination=mocks/surface_mock.go -package=mocks

// Track is the positioned strip holding every slide side by side.
type Track interface {
	// SlideWidth returns the live width of the first slide.
	SlideWidth() int
	// SetOffset moves the strip horizontally.
	SetOffset(offset int)
}

// Dot is a single slide indicator.
type Dot interface {
	SetActive(active bool)
	// SetSelected mirrors the active flag for assistive tooling.
	SetSelected(selected bool)
}

// DotContainer creates one Dot per slide during Init.
type DotContainer interface {
	AddDot(index int) Dot
}

// Affordance is the visual hint that a nav control can be used.
type Affordance struct {
	Cursor  string
	Opacity float64
}

var (
	enabledAffordance  = Affordance{Cursor: "pointer", Opacity: 1}
	disabledAffordance = Affordance{Cursor: "default", Opacity: 0.5}
)

// AffordanceFor returns the affordance a nav control shows in the given state.
func AffordanceFor(disabled bool) Affordance {
	if disabled {
		return disabledAffordance
	}
	return enabledAffordance
}

// NavControl is an optional previous/next button.
type NavControl interface {
	SetDisabled(disabled bool)
	SetAffordance(a Affordance)
}
