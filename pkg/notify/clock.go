package notify

import "time"

// Clock abstracts the time source so expiry can be tested deterministically.
// Production code uses the real clock; notifytest provides a manual one.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules fn to run once after d elapses and returns a
	// handle that can stop it.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a one-shot timer handle.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// timer from firing.
	Stop() bool
}

// systemClock is the real-time Clock used by default.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() bool {
	return s.t.Stop()
}

// SystemClock returns the real-time Clock.
func SystemClock() Clock {
	return systemClock{}
}
