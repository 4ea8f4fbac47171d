// Package queue provides the waiting-queue entry created when a vessel
// cannot be berthed immediately.
package queue

import (
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

// BaseWait is the wait estimate, in ticks, for a high-priority vessel.
const BaseWait int64 = 60

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
	ErrAlreadyServed         = errs.NewInvalidStatusError("queue entry")
)

// Entry is a vessel's place in the berth queue. Positions are issued by the
// counter service and grow monotonically, so they double as arrival order.
type Entry struct {
	position      kernel.ID
	vesselID      kernel.ID
	priority      int
	estimatedWait int64
	enqueuedAt    kernel.Tick
	served        bool
	guard         guard.ConstructorGuard
}

// EstimateWait returns BaseWait for priorities above 7 and twice that otherwise.
func EstimateWait(priority int) int64 {
	if priority > 7 {
		return BaseWait
	}
	return BaseWait * 2
}

func NewEntry(position, vesselID kernel.ID, priority int, now kernel.Tick) (*Entry, error) {
	if err := errors.Join(position.Validate(), vesselID.Validate()); err != nil {
		return nil, err
	}

	return &Entry{
		position:      position,
		vesselID:      vesselID,
		priority:      priority,
		estimatedWait: EstimateWait(priority),
		enqueuedAt:    now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func RestoreEntry(
	position, vesselID kernel.ID,
	priority int,
	estimatedWait int64,
	enqueuedAt kernel.Tick,
	served bool,
) (*Entry, error) {
	e, err := NewEntry(position, vesselID, priority, enqueuedAt)
	if err != nil {
		return nil, err
	}
	e.estimatedWait = estimatedWait
	e.served = served
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) Position() kernel.ID { return e.position }

func (e *Entry) VesselID() kernel.ID { return e.vesselID }

func (e *Entry) Priority() int { return e.priority }

func (e *Entry) EstimatedWait() int64 { return e.estimatedWait }

func (e *Entry) EnqueuedAt() kernel.Tick { return e.enqueuedAt }

func (e *Entry) IsServed() bool { return e.served }

// ServesBefore orders entries by descending priority, then by position.
func (e *Entry) ServesBefore(other *Entry) bool {
	if e.priority != other.priority {
		return e.priority > other.priority
	}
	return e.position < other.position
}

// MarkServed removes the entry from the waiting set once its vessel is berthed.
func (e *Entry) MarkServed() error {
	if e.served {
		return fmt.Errorf("%w: position %s already served", ErrAlreadyServed, e.position)
	}
	e.served = true
	return nil
}
