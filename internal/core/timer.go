package core

import "time"

// Pacer gates simulation generations so that consecutive generations are at
// least one delay apart. Frame-driven front-ends call Ready once per frame.
type Pacer struct {
	delay time.Duration
	last  time.Time
	now   func() time.Time
}

// NewPacer constructs a Pacer with the given delay between generations.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the delay. Negative delays are treated as zero. It is safe
// to call from the main loop.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	p.delay = delay
}

// Delay returns the configured delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Ready reports whether a generation should run now. The first call is
// always ready.
func (p *Pacer) Ready() bool {
	now := p.now()
	if p.last.IsZero() || now.Sub(p.last) >= p.delay {
		p.last = now
		return true
	}
	return false
}
