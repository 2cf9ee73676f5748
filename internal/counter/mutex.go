package counter

import "sync"

// MutexCounter implements Counter with a mutex held for the duration of
// each single increment. The critical section covers exactly one
// read-modify-write; the lock is never held across caller code.
type MutexCounter struct {
	mu sync.Mutex
	n  int64
}

// Inc adds one to the counter under the lock.
func (c *MutexCounter) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Add adds delta to the counter under the lock.
func (c *MutexCounter) Add(delta int64) {
	c.mu.Lock()
	c.n += delta
	c.mu.Unlock()
}

// Value returns the current counter value under the lock.
func (c *MutexCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
