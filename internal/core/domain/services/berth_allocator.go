package services

import (
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
)

// ErrNoSuitableBerth is returned when no free, operational, compatible berth
// is large enough for the vessel.
var ErrNoSuitableBerth = errors.New("no suitable berth")

// BerthAllocator enforces the vessel/berth binding rules.
//
// Business rules:
//   - a berth holds at most one vessel
//   - a vessel holds at most one berth
//   - the vessel must fit the berth envelope on length, beam and draft
//   - a vessel has at most one active schedule, and active schedules on the
//     same berth never overlap
//   - nobody docks at a berth inside another vessel's booked window
type BerthAllocator struct{}

func NewBerthAllocator() BerthAllocator {
	return BerthAllocator{}
}

// Assign docks v at b. Checks run in a fixed order: berth occupancy, vessel
// assignment, envelope fit, vessel status. Nothing is mutated unless all pass.
func (a BerthAllocator) Assign(v *vessel.Vessel, b *berth.Berth) error {
	if err := errors.Join(v.Validate(), b.Validate()); err != nil {
		return err
	}

	if err := b.CheckAvailable(); err != nil {
		return err
	}
	if v.IsAssigned() {
		return fmt.Errorf("%w: vessel %s is at berth %s", vessel.ErrAlreadyAssigned, v.ID(), *v.Berth())
	}
	if err := b.CheckFits(v.Dimensions()); err != nil {
		return err
	}
	if _, err := v.Status().Dock(); err != nil {
		return err
	}

	if err := b.Occupy(v.ID()); err != nil {
		return err
	}
	return v.Dock(b.ID())
}

// Dock is Assign for a berth that may carry bookings: it first rejects the
// berth with schedule.ErrBerthWindowTaken while another vessel's active
// schedule covers now.
func (a BerthAllocator) Dock(v *vessel.Vessel, b *berth.Berth, bookings []*schedule.Schedule, now kernel.Tick) error {
	if err := errors.Join(v.Validate(), b.Validate()); err != nil {
		return err
	}
	if err := a.CheckBookedWindow(v.ID(), b.ID(), now, bookings); err != nil {
		return err
	}
	return a.Assign(v, b)
}

// CheckBookedWindow fails when an active schedule of another vessel on
// berthID covers the tick now.
func (a BerthAllocator) CheckBookedWindow(
	vesselID, berthID kernel.ID,
	now kernel.Tick,
	bookings []*schedule.Schedule,
) error {
	for _, s := range bookings {
		if s.BerthID() != berthID || s.VesselID() == vesselID || !s.IsActive() {
			continue
		}
		if s.Overlaps(now, now.Add(1)) {
			return fmt.Errorf(
				"%w: schedule %s books berth %s for vessel %s during [%d, %d)",
				schedule.ErrBerthWindowTaken, s.ID(), berthID, s.VesselID(), s.RequestedArrival(), s.RequestedDeparture(),
			)
		}
	}
	return nil
}

// Release undocks v from b, which must be the berth v is assigned to.
func (a BerthAllocator) Release(v *vessel.Vessel, b *berth.Berth) error {
	if err := errors.Join(v.Validate(), b.Validate()); err != nil {
		return err
	}
	if _, err := v.Status().Depart(); err != nil {
		return err
	}
	if err := b.Vacate(v.ID()); err != nil {
		return err
	}

	_, err := v.Depart()
	return err
}

// FindBestBerth returns the smallest envelope among berths that accept v.
// Ties go to the lowest berth id.
func (a BerthAllocator) FindBestBerth(v *vessel.Vessel, berths []*berth.Berth) (*berth.Berth, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var best *berth.Berth
	for _, b := range berths {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if !b.Accepts(v.Dimensions(), v.Class()) {
			continue
		}
		if best == nil ||
			b.Envelope().Volume() < best.Envelope().Volume() ||
			(b.Envelope().Volume() == best.Envelope().Volume() && b.ID() < best.ID()) {
			best = b
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w for vessel %s (%s, %s)", ErrNoSuitableBerth, v.ID(), v.Class(), v.Dimensions())
	}
	return best, nil
}

// CheckScheduleConflict rejects a new window for vesselID on berthID when the
// vessel already has an active schedule or an active schedule on the berth
// overlaps [arrival, departure).
func (a BerthAllocator) CheckScheduleConflict(
	vesselID kernel.ID,
	arrival, departure kernel.Tick,
	vesselSchedules, berthSchedules []*schedule.Schedule,
) error {
	for _, s := range vesselSchedules {
		if s.IsActive() {
			return fmt.Errorf("%w: vessel %s has schedule %s", schedule.ErrActiveScheduleExists, vesselID, s.ID())
		}
	}
	for _, s := range berthSchedules {
		if s.IsActive() && s.Overlaps(arrival, departure) {
			return fmt.Errorf(
				"%w: schedule %s holds berth %s during [%d, %d)",
				schedule.ErrBerthWindowTaken, s.ID(), s.BerthID(), s.RequestedArrival(), s.RequestedDeparture(),
			)
		}
	}
	return nil
}
