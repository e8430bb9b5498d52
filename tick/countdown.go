// Package tick provides the fixed-period countdown every rig's main loop
// blocks on between iterations.
package tick

import "time"

// Waiter blocks until the next tick.
type Waiter interface {
	Wait()
}

// Countdown fires every period. Wait consumes one expiry, so a loop that
// overruns a period does not accumulate a backlog of ticks.
type Countdown struct {
	period time.Duration
	t      *time.Ticker
}

// New starts a countdown. A non-positive period is coerced to 1 ms.
func New(period time.Duration) *Countdown {
	if period <= 0 {
		period = time.Millisecond
	}
	return &Countdown{period: period, t: time.NewTicker(period)}
}

// Wait blocks until the countdown next expires.
func (c *Countdown) Wait() { <-c.t.C }

// WaitN blocks for n expiries.
func (c *Countdown) WaitN(n int) {
	for i := 0; i < n; i++ {
		c.Wait()
	}
}

// C exposes the expiry channel for select loops.
func (c *Countdown) C() <-chan time.Time { return c.t.C }

// Period returns the current period.
func (c *Countdown) Period() time.Duration { return c.period }

// Reset restarts the countdown with a new period.
func (c *Countdown) Reset(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	c.period = period
	c.t.Reset(period)
}

// Stop releases the underlying ticker.
func (c *Countdown) Stop() { c.t.Stop() }
