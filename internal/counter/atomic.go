package counter

import "sync/atomic"

// AtomicCounter implements Counter with an atomic fetch-and-add per
// increment. Every read-modify-write completes as one indivisible step
// relative to other increments, so concurrent use never loses updates.
type AtomicCounter struct {
	n atomic.Int64
}

// Inc adds one to the counter atomically.
func (c *AtomicCounter) Inc() {
	c.n.Add(1)
}

// Add adds delta to the counter atomically.
func (c *AtomicCounter) Add(delta int64) {
	c.n.Add(delta)
}

// Value returns the current counter value.
func (c *AtomicCounter) Value() int64 {
	return c.n.Load()
}
