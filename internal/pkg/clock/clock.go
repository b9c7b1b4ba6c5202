package clock

import "time"

// Clock abstracts time.Now so that expiry checks and the scheduled sweep can
// be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a preset instant and only moves when told to.
type FixedClock struct {
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.current
}

func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
