package core

import "time"

// Interval reports when a fixed wall-clock period has elapsed. Long headless
// runs use it to throttle progress output.
type Interval struct {
	period time.Duration
	last   time.Time
	now    func() time.Time
}

// NewInterval constructs an Interval firing at most once per period.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = time.Second
	}
	return &Interval{period: period, now: time.Now}
}

// Due reports whether the period has elapsed since the last time Due
// returned true. The first call only arms the interval.
func (i *Interval) Due() bool {
	now := i.now()
	if i.last.IsZero() {
		i.last = now
		return false
	}
	if now.Sub(i.last) >= i.period {
		i.last = now
		return true
	}
	return false
}
