package kernel

import (
	"fmt"

	"seaport/internal/pkg/errs"
)

// Tick is a point on the logical clock. The clock starts at zero and only
// moves forward.
type Tick int64

// NewTick rejects negative clock values.
func NewTick(raw int64) (Tick, error) {
	if raw < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("tick", fmt.Errorf("%d is negative", raw))
	}
	return Tick(raw), nil
}

// Add returns the tick delta units later.
func (t Tick) Add(delta int64) Tick {
	return t + Tick(delta)
}

// Since returns the number of ticks elapsed from earlier to t.
func (t Tick) Since(earlier Tick) int64 {
	return int64(t - earlier)
}

func (t Tick) Before(other Tick) bool {
	return t < other
}

func (t Tick) After(other Tick) bool {
	return t > other
}
