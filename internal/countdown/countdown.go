// Package countdown turns frame deltas into whole-interval ticks.
package countdown

import "time"

// Driver fires onTick once per elapsed interval while active reports true.
// active is read before every tick; once it turns false, accumulated time is
// dropped and no further ticks fire until Reset.
type Driver struct {
	interval time.Duration
	acc      time.Duration
	active   func() bool
	onTick   func()
}

func New(interval time.Duration, active func() bool, onTick func()) *Driver {
	return &Driver{interval: interval, active: active, onTick: onTick}
}

// Reset starts a fresh interval.
func (d *Driver) Reset() { d.acc = 0 }

// Advance adds dt to the clock and returns how many ticks fired.
func (d *Driver) Advance(dt time.Duration) int {
	if !d.active() {
		d.acc = 0
		return 0
	}
	d.acc += dt
	fired := 0
	for d.acc >= d.interval {
		if !d.active() {
			d.acc = 0
			break
		}
		d.acc -= d.interval
		d.onTick()
		fired++
	}
	return fired
}

// Until returns the time left before the next tick.
func (d *Driver) Until() time.Duration { return d.interval - d.acc }
