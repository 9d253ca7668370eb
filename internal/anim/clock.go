// Package anim provides the fixed-rate animation clock.
package anim

import "time"

// DefaultPeriod is the tick interval, about 60 Hz.
const DefaultPeriod = 16 * time.Millisecond

// Clock is a restartable ticker. Hosts select on C() from the same
// goroutine that owns the scene controller; while the clock is stopped
// C returns a nil channel, which never fires.
type Clock struct {
	period time.Duration
	ticker *time.Ticker
}

// New returns a stopped clock. A non-positive period uses DefaultPeriod.
func New(period time.Duration) *Clock {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Clock{period: period}
}

// Period returns the tick interval.
func (c *Clock) Period() time.Duration { return c.period }

// Start begins ticking. Starting a running clock does nothing.
func (c *Clock) Start() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.period)
}

// Stop halts the clock. Stopping a stopped clock does nothing.
func (c *Clock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool { return c.ticker != nil }

// C returns the tick channel, or nil while stopped.
func (c *Clock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
