package carousel

import "testing"

func TestComputeRenderState(t *testing.T) {
	tests := []struct {
		name  string
		state State
		width int
		gap   int
		want  RenderState
	}{
		{"First of three", State{0, 3}, 100, 25, RenderState{0, 0, true, false}},
		{"Middle of three", State{1, 3}, 100, 25, RenderState{-125, 1, false, false}},
		{"Last of three", State{2, 3}, 100, 25, RenderState{-250, 2, false, true}},
		{"Only slide", State{0, 1}, 80, 25, RenderState{0, 0, true, true}},
		{"No gap", State{3, 4}, 10, 0, RenderState{-30, 3, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRenderState(tt.state, tt.width, tt.gap)
			if got != tt.want {
				t.Errorf("ComputeRenderState(%+v, %d, %d) = %+v, want %+v", tt.state, tt.width, tt.gap, got, tt.want)
			}
		})
	}
}

func TestStateWrap(t *testing.T) {
	s := State{Index: 2, Count: 3}
	if got := s.next().Index; got != 0 {
		t.Errorf("next() from last = %d, want 0", got)
	}
	s = State{Index: 0, Count: 3}
	if got := s.previous().Index; got != 2 {
		t.Errorf("previous() from first = %d, want 2", got)
	}
	if !(State{}).Inert() {
		t.Error("zero-count state should be inert")
	}
}
