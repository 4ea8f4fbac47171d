package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"
)

// ScheduleEventCommandHandler drives a schedule through arrived and completed.
// Both events are stamped with the current tick and need a port operator.
//
// Arrival docks the scheduled vessel at the booked berth, and departure
// releases it, so the schedule and the berth occupancy move together. Rows
// are locked schedule first, then vessel, then berth.
type ScheduleEventCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
	allocator  services.BerthAllocator
}

func NewScheduleEventCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) ScheduleEventCommandHandler {
	return ScheduleEventCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
		allocator:  services.NewBerthAllocator(),
	}
}

// HandleArrival fails with schedule.ErrArrivalTooEarly before the requested
// arrival and with berth.ErrBerthOccupied while another vessel is still at
// the berth. A vessel an operator already docked there is left in place.
func (h ScheduleEventCommandHandler) HandleArrival(ctx context.Context, cmd RecordArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.apply(ctx, cmd.scheduleCommand, "record arrival", h.arrive)
}

// HandleDeparture completes the schedule and releases the berth when the
// vessel is still docked there.
func (h ScheduleEventCommandHandler) HandleDeparture(ctx context.Context, cmd RecordDepartureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.apply(ctx, cmd.scheduleCommand, "record departure", h.depart)
}

func (h ScheduleEventCommandHandler) arrive(ctx context.Context, uow UoW, s *schedule.Schedule, now kernel.Tick) error {
	if err := s.RecordArrival(now); err != nil {
		return err
	}

	vesselRepo := uow.VesselRepository()
	berthRepo := uow.BerthRepository()

	v, err := vesselRepo.Get(ctx, s.VesselID())
	if err != nil {
		return err
	}
	if v.Berth() != nil && *v.Berth() == s.BerthID() {
		return nil
	}
	b, err := berthRepo.Get(ctx, s.BerthID())
	if err != nil {
		return err
	}
	bookings, err := uow.ScheduleRepository().GetActiveByBerth(ctx, b.ID())
	if err != nil {
		return err
	}

	wasQueued := v.Status() == vessel.Queued
	if err = h.allocator.Dock(v, b, bookings, now); err != nil {
		return err
	}

	if err = vesselRepo.Update(ctx, v); err != nil {
		return err
	}
	if err = berthRepo.Update(ctx, b); err != nil {
		return err
	}
	if wasQueued {
		if err = serveQueueEntry(ctx, uow.QueueRepository(), v.ID()); err != nil {
			return err
		}
	}
	return uow.CounterRepository().Increment(ctx, ports.BerthsInUse)
}

func (h ScheduleEventCommandHandler) depart(ctx context.Context, uow UoW, s *schedule.Schedule, now kernel.Tick) error {
	if err := s.RecordDeparture(now); err != nil {
		return err
	}

	vesselRepo := uow.VesselRepository()
	berthRepo := uow.BerthRepository()

	v, err := vesselRepo.Get(ctx, s.VesselID())
	if err != nil {
		return err
	}
	if v.Berth() == nil || *v.Berth() != s.BerthID() {
		return nil
	}
	b, err := berthRepo.Get(ctx, s.BerthID())
	if err != nil {
		return err
	}

	if err = h.allocator.Release(v, b); err != nil {
		return err
	}

	if err = vesselRepo.Update(ctx, v); err != nil {
		return err
	}
	if err = berthRepo.Update(ctx, b); err != nil {
		return err
	}
	return uow.CounterRepository().Decrement(ctx, ports.BerthsInUse)
}

func (h ScheduleEventCommandHandler) apply(
	ctx context.Context,
	cmd scheduleCommand,
	action string,
	event func(context.Context, UoW, *schedule.Schedule, kernel.Tick) error,
) error {
	if err := h.roles.require(ctx, cmd.Caller(), fmt.Sprintf("%s on schedule %s", action, cmd.ScheduleID()),
		kernel.RolePortOperator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	s, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	if err = event(ctx, uow, s, h.clock.Now()); err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
