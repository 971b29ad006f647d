package flow

import "time"

// Timer is a tick-driven countdown. It only moves when Advance is called.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	running   bool
}

// Reset restarts the countdown at d, discarding whatever was left.
func (t *Timer) Reset(d time.Duration) {
	if t == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	t.duration = d
	t.remaining = d
	t.running = true
}

// Stop zeroes the timer without it counting as expired.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.duration = 0
	t.remaining = 0
	t.running = false
}

// Advance counts down by dt.
func (t *Timer) Advance(dt time.Duration) {
	if t == nil || !t.running || dt <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Expired reports whether a running countdown has reached zero.
func (t *Timer) Expired() bool {
	return t != nil && t.running && t.remaining <= 0
}

func (t *Timer) Running() bool {
	return t != nil && t.running
}

func (t *Timer) Remaining() time.Duration {
	if t == nil {
		return 0
	}
	return t.remaining
}

// Fraction is the share of the countdown still left, in [0, 1].
func (t *Timer) Fraction() float64 {
	if t == nil || t.duration <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}
