// Package notifytest provides a manual clock for testing notify expiry.
//
// The clock only moves when the test advances it, which makes timing
// properties deterministic:
//
//	clock := notifytest.NewClock()
//	center := notify.NewCenter(notify.WithClock(clock))
//
//	center.Add("A", notify.WithDuration(time.Second))
//	clock.Advance(999 * time.Millisecond) // still present
//	clock.Advance(time.Millisecond)       // expired
package notifytest

import (
	"sort"
	"sync"
	"time"

	"github.com/vango-go/vangoui/pkg/notify"
)

// Clock is a notify.Clock driven manually by the test.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

// NewClock creates a manual clock. The starting instant is arbitrary but
// fixed, so CreatedAt comparisons are stable.
func NewClock() *Clock {
	return &Clock{
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now returns the clock's current reading.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules fn to run when the clock has advanced by d.
// A non-positive d fires on the next Advance call.
func (c *Clock) AfterFunc(d time.Duration, fn func()) notify.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &fakeTimer{
		clock: c,
		when:  c.now.Add(d),
		seq:   c.seq,
		fn:    fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers in expiry order.
// Ties fire in scheduling order. Each callback observes Now() at its own
// expiry instant, the way a real event loop would deliver them.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	deadline := c.now.Add(d)

	for {
		t := c.nextDueLocked(deadline)
		if t == nil {
			break
		}
		c.removeLocked(t)
		if t.when.After(c.now) {
			c.now = t.when
		}
		fn := t.fn

		// Fire outside the lock: the callback re-enters the Center,
		// and may schedule or stop other timers on this clock.
		c.mu.Unlock()
		fn()
		c.mu.Lock()
	}

	c.now = deadline
	c.mu.Unlock()
}

// Pending returns the number of scheduled, unfired timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// nextDueLocked returns the earliest timer due at or before deadline.
func (c *Clock) nextDueLocked(deadline time.Time) *fakeTimer {
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	if len(c.timers) == 0 || c.timers[0].when.After(deadline) {
		return nil
	}
	return c.timers[0]
}

func (c *Clock) removeLocked(t *fakeTimer) {
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// fakeTimer is a scheduled callback on a Clock.
type fakeTimer struct {
	clock *Clock
	when  time.Time
	seq   uint64
	fn    func()
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	for i, candidate := range t.clock.timers {
		if candidate == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}
