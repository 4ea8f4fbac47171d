// Package schedule provides the Schedule aggregate, a time-bound binding of
// one vessel to one berth that is driven from arrival to departure.
package schedule

import (
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")
	ErrArrivalInPast            = errs.NewValueIsInvalidError("requested arrival")
	ErrDepartureBeforeArrival   = errs.NewValueIsInvalidError("requested departure")
	ErrArrivalTooEarly          = errs.NewValueIsInvalidError("actual arrival")
	ErrActiveScheduleExists     = errs.NewAlreadyExistsError("active schedule")
	ErrBerthWindowTaken         = errs.NewResourceOccupiedError("berth window")
)

// Schedule reserves the window [requestedArrival, requestedDeparture) on a berth.
type Schedule struct {
	id                 kernel.ID
	vesselID           kernel.ID
	berthID            kernel.ID
	requestedArrival   kernel.Tick
	requestedDeparture kernel.Tick
	actualArrival      *kernel.Tick
	actualDeparture    *kernel.Tick
	status             Status
	priority           int
	guard              guard.ConstructorGuard
}

// NewSchedule books a window that starts no earlier than now and ends after it starts.
func NewSchedule(
	id, vesselID, berthID kernel.ID,
	requestedArrival, requestedDeparture kernel.Tick,
	priority int,
	now kernel.Tick,
) (*Schedule, error) {
	if err := errors.Join(id.Validate(), vesselID.Validate(), berthID.Validate()); err != nil {
		return nil, err
	}
	if requestedArrival.Before(now) {
		return nil, fmt.Errorf("%w: %d is before now (%d)", ErrArrivalInPast, requestedArrival, now)
	}
	if !requestedDeparture.After(requestedArrival) {
		return nil, fmt.Errorf("%w: %d is not after arrival %d", ErrDepartureBeforeArrival, requestedDeparture, requestedArrival)
	}

	return &Schedule{
		id:                 id,
		vesselID:           vesselID,
		berthID:            berthID,
		requestedArrival:   requestedArrival,
		requestedDeparture: requestedDeparture,
		status:             Scheduled,
		priority:           priority,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreSchedule rebuilds a schedule from storage.
func RestoreSchedule(
	id, vesselID, berthID kernel.ID,
	requestedArrival, requestedDeparture kernel.Tick,
	actualArrival, actualDeparture *kernel.Tick,
	status Status,
	priority int,
) (*Schedule, error) {
	if err := errors.Join(id.Validate(), vesselID.Validate(), berthID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Schedule{
		id:                 id,
		vesselID:           vesselID,
		berthID:            berthID,
		requestedArrival:   requestedArrival,
		requestedDeparture: requestedDeparture,
		actualArrival:      actualArrival,
		actualDeparture:    actualDeparture,
		status:             status,
		priority:           priority,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (s *Schedule) Validate() error {
	if s == nil {
		return ErrScheduleIsNotConstructed
	}
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

func (s *Schedule) ID() kernel.ID { return s.id }
func (s *Schedule) VesselID() kernel.ID { return s.vesselID }
func (s *Schedule) BerthID() kernel.ID { return s.berthID }
func (s *Schedule) RequestedArrival() kernel.Tick { return s.requestedArrival }
func (s *Schedule) RequestedDeparture() kernel.Tick { return s.requestedDeparture }
func (s *Schedule) ActualArrival() *kernel.Tick { return s.actualArrival }
func (s *Schedule) ActualDeparture() *kernel.Tick { return s.actualDeparture }
func (s *Schedule) Status() Status { return s.status }
func (s *Schedule) Priority() int { return s.priority }

// EstimatedDuration is the length of the booked window in ticks.
func (s *Schedule) EstimatedDuration() int64 {
	return s.requestedDeparture.Since(s.requestedArrival)
}

// IsActive reports whether the schedule still holds its berth window.
func (s *Schedule) IsActive() bool {
	return s.status != Completed
}

// Overlaps reports whether the half-open window [arrival, departure)
// intersects this schedule's window.
func (s *Schedule) Overlaps(arrival, departure kernel.Tick) bool {
	return arrival.Before(s.requestedDeparture) && s.requestedArrival.Before(departure)
}

// RecordArrival marks the vessel as arrived. The actual arrival cannot
// precede the requested one.
func (s *Schedule) RecordArrival(now kernel.Tick) error {
	next, err := s.status.Arrive()
	if err != nil {
		return err
	}
	if now.Before(s.requestedArrival) {
		return fmt.Errorf("%w: %d is before requested arrival %d", ErrArrivalTooEarly, now, s.requestedArrival)
	}

	s.status = next
	s.actualArrival = &now
	return nil
}

// RecordDeparture completes the schedule and releases its berth window.
func (s *Schedule) RecordDeparture(now kernel.Tick) error {
	next, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = next
	s.actualDeparture = &now
	return nil
}
