package carousel

import "time"

//go:generate mockgen -source=timer.go -destination=mocks/timer_mock.go -package=mocks

// Timer is a cancellable scheduled task that, once armed, causes the owner
// to call Controller.Next after delay. Arm replaces any pending schedule.
// Disarm cancels it. Implementations never run two schedules at once.
type Timer interface {
	Arm(delay time.Duration)
	Disarm()
}

// noopTimer is used when no timer is supplied; autoplay is then off.
type noopTimer struct{}

func (noopTimer) Arm(time.Duration) {}
func (noopTimer) Disarm()           {}
