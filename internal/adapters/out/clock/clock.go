// Package clock provides the shared logical clock. The engine only reads it;
// the tick job and administrators advance it.
package clock

import (
	"sync/atomic"

	"seaport/internal/core/domain/model/kernel"
)

type LogicalClock struct {
	now atomic.Int64
}

func NewLogicalClock(start kernel.Tick) *LogicalClock {
	c := &LogicalClock{}
	c.now.Store(int64(start))
	return c
}

func (c *LogicalClock) Now() kernel.Tick {
	return kernel.Tick(c.now.Load())
}

// Advance moves the clock forward by delta ticks and returns the new time.
// A non-positive delta leaves the clock unchanged.
func (c *LogicalClock) Advance(delta int64) kernel.Tick {
	if delta <= 0 {
		return c.Now()
	}
	return kernel.Tick(c.now.Add(delta))
}

// AdvanceTo moves the clock to t unless it already reads later than t.
func (c *LogicalClock) AdvanceTo(t kernel.Tick) kernel.Tick {
	for {
		cur := c.now.Load()
		if int64(t) <= cur {
			return kernel.Tick(cur)
		}
		if c.now.CompareAndSwap(cur, int64(t)) {
			return t
		}
	}
}
