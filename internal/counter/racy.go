package counter

// RacyCounter implements Counter with plain unsynchronized loads and
// stores. Concurrent use is a data race: two workers can read the same
// value, both add one, and both write back the same result, losing an
// update.
//
// This is the anti-example the experiment demonstrates. It must never be
// used with more than one goroutine outside the lost-updates demo and
// the tests that document the defect.
type RacyCounter struct {
	n int64
}

// Inc adds one to the counter with no synchronization.
func (c *RacyCounter) Inc() {
	c.n++
}

// Add adds delta to the counter with no synchronization.
func (c *RacyCounter) Add(delta int64) {
	c.n += delta
}

// Value returns the counter value with no synchronization.
func (c *RacyCounter) Value() int64 {
	return c.n
}
