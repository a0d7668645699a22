// SPDX-License-Identifier: MIT
package runner

import "sync"

// SafeCounter is a thread-safe counter, the Runner counts its completed jobs with it.
type SafeCounter struct {
	m   sync.Mutex
	val int
}

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}
