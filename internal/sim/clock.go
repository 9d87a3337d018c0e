package sim

import "time"

// Clock is the fixed-rate tick driver. The render loop feeds it elapsed
// real time every callback; the clock fires exactly one logic tick when
// the accumulated time meets or exceeds the effective tick interval and
// carries the remainder over (elapsed mod interval), so the simulation
// rate stays tied to wall-clock time regardless of render framerate.
type Clock struct {
	interval time.Duration
	acc      time.Duration
	running  bool
}

// NewClock creates a stopped clock with the given base tick interval.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Start arms the clock with an empty accumulator. Idempotent.
func (c *Clock) Start() {
	c.acc = 0
	c.running = true
}

// Stop disarms the clock. Idempotent: stopping a stopped clock is a
// no-op, and a stopped clock never fires regardless of how much time is
// fed to it.
func (c *Clock) Stop() {
	c.running = false
	c.acc = 0
}

// Running reports whether the clock is armed.
func (c *Clock) Running() bool {
	return c.running
}

// Interval returns the base tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Advance feeds elapsed real time into the accumulator and reports
// whether a logic tick fired. speedScale multiplies the base interval
// (speed-up effects pass < 1, slow-down > 1).
func (c *Clock) Advance(elapsed time.Duration, speedScale float64) bool {
	if !c.running {
		return false
	}

	effective := time.Duration(float64(c.interval) * speedScale)
	if effective <= 0 {
		effective = c.interval
	}

	c.acc += elapsed
	if c.acc < effective {
		return false
	}
	c.acc %= effective
	return true
}
