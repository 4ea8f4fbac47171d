package commands

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"
	"seaport/internal/pkg/errs"
)

// AssignBerthCommandHandler binds a vessel to a berth chosen by a port operator.
//
// The vessel and then the berth are locked for the duration of the unit of
// work, so two operators racing for the same berth are serialised and the
// second one sees berth.ErrBerthOccupied. The queue entry and the counter row
// are written last, in the order every docking handler uses.
type AssignBerthCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
	allocator  services.BerthAllocator
}

func NewAssignBerthCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) AssignBerthCommandHandler {
	return AssignBerthCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
		allocator:  services.NewBerthAllocator(),
	}
}

// Handle checks, in order: another vessel's booked window on the berth,
// berth availability, an existing assignment of the vessel, and the berth
// envelope. On success the berth utilization counter
// is incremented and a pending queue entry of the vessel is marked served.
func (h AssignBerthCommandHandler) Handle(ctx context.Context, cmd AssignBerthCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "assign berth", kernel.RolePortOperator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vesselRepo := uow.VesselRepository()
	berthRepo := uow.BerthRepository()

	v, err := vesselRepo.Get(ctx, cmd.VesselID())
	if err != nil {
		return err
	}
	b, err := berthRepo.Get(ctx, cmd.BerthID())
	if err != nil {
		return err
	}

	bookings, err := uow.ScheduleRepository().GetActiveByBerth(ctx, b.ID())
	if err != nil {
		return err
	}

	wasQueued := v.Status() == vessel.Queued
	if err = h.allocator.Dock(v, b, bookings, h.clock.Now()); err != nil {
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
	if err = uow.CounterRepository().Increment(ctx, ports.BerthsInUse); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func serveQueueEntry(ctx context.Context, queueRepo ports.QueueRepository, vesselID kernel.ID) error {
	entry, err := queueRepo.GetWaitingByVessel(ctx, vesselID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = entry.MarkServed(); err != nil {
		return err
	}
	return queueRepo.Update(ctx, entry)
}
