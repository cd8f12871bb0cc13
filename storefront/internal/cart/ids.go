package cart

import (
	"sync"
	"time"
)

type IDSource interface {
	NextID() int64
}

// ClockIDs hands out millisecond timestamps, stepping past the previous value
// when two calls land in the same millisecond.
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewClockIDs() *ClockIDs {
	return &ClockIDs{now: time.Now}
}

func (c *ClockIDs) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
