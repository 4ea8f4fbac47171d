package commands

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"
)

var ErrQueueIsEmpty = errors.New("no vessel is waiting")

// Allocation reports which vessel was docked where.
type Allocation struct {
	VesselID kernel.ID
	BerthID  kernel.ID
}

// AllocateQueuedVesselCommandHandler serves the waiting queue greedily.
//
// Entries are visited highest priority first, lowest position on ties. The
// first vessel for which a free operational berth fits (and whose class the
// berth accepts, and that nobody else has booked for the current tick) is
// docked at the smallest such berth. Vessels no berth can take stay queued
// and do not block the ones behind them.
//
// The queue and the free berths are read without locks. Waiting vessels are
// locked in queue order, then only the chosen berth is locked and checked
// again, so the handler takes rows in the same order as AssignBerth. A berth
// taken in between fails the call with berth.ErrBerthOccupied.
//
// Example:
//
//	allocation, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrQueueIsEmpty):
//	    // nothing to do
//	case errors.Is(err, services.ErrNoSuitableBerth):
//	    // every waiting vessel needs a berth that is taken or too small
//	}
type AllocateQueuedVesselCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
	allocator  services.BerthAllocator
}

func NewAllocateQueuedVesselCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) AllocateQueuedVesselCommandHandler {
	return AllocateQueuedVesselCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
		allocator:  services.NewBerthAllocator(),
	}
}

func (h AllocateQueuedVesselCommandHandler) Handle(
	ctx context.Context,
	cmd AllocateQueuedVesselCommand,
) (Allocation, error) {
	if err := cmd.Validate(); err != nil {
		return Allocation{}, err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "allocate queued vessels", kernel.RolePortOperator); err != nil {
		return Allocation{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Allocation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	queueRepo := uow.QueueRepository()
	vesselRepo := uow.VesselRepository()
	berthRepo := uow.BerthRepository()
	scheduleRepo := uow.ScheduleRepository()
	now := h.clock.Now()

	entries, err := queueRepo.GetWaiting(ctx)
	if err != nil {
		return Allocation{}, err
	}
	if len(entries) == 0 {
		return Allocation{}, ErrQueueIsEmpty
	}

	free, err := berthRepo.GetAllFree(ctx)
	if err != nil {
		return Allocation{}, err
	}
	bookings := make(map[kernel.ID][]*schedule.Schedule, len(free))
	for _, b := range free {
		if bookings[b.ID()], err = scheduleRepo.GetActiveByBerth(ctx, b.ID()); err != nil {
			return Allocation{}, err
		}
	}

	for _, entry := range entries {
		v, getErr := vesselRepo.Get(ctx, entry.VesselID())
		if getErr != nil {
			return Allocation{}, getErr
		}
		if v.Status() != vessel.Queued {
			continue
		}

		candidates := make([]*berth.Berth, 0, len(free))
		for _, b := range free {
			if h.allocator.CheckBookedWindow(v.ID(), b.ID(), now, bookings[b.ID()]) == nil {
				candidates = append(candidates, b)
			}
		}

		best, findErr := h.allocator.FindBestBerth(v, candidates)
		if errors.Is(findErr, services.ErrNoSuitableBerth) {
			continue
		}
		if findErr != nil {
			return Allocation{}, findErr
		}

		return h.dock(ctx, uow, v, best.ID(), now)
	}

	return Allocation{}, services.ErrNoSuitableBerth
}

// dock locks the chosen berth and re-reads its bookings before docking v,
// since both were picked from unlocked reads.
func (h AllocateQueuedVesselCommandHandler) dock(
	ctx context.Context,
	uow UoW,
	v *vessel.Vessel,
	berthID kernel.ID,
	now kernel.Tick,
) (Allocation, error) {
	berthRepo := uow.BerthRepository()

	b, err := berthRepo.Get(ctx, berthID)
	if err != nil {
		return Allocation{}, err
	}
	bookings, err := uow.ScheduleRepository().GetActiveByBerth(ctx, b.ID())
	if err != nil {
		return Allocation{}, err
	}
	if err = h.allocator.Dock(v, b, bookings, now); err != nil {
		return Allocation{}, err
	}

	if err = uow.VesselRepository().Update(ctx, v); err != nil {
		return Allocation{}, err
	}
	if err = berthRepo.Update(ctx, b); err != nil {
		return Allocation{}, err
	}
	if err = serveQueueEntry(ctx, uow.QueueRepository(), v.ID()); err != nil {
		return Allocation{}, err
	}
	if err = uow.CounterRepository().Increment(ctx, ports.BerthsInUse); err != nil {
		return Allocation{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Allocation{}, err
	}
	return Allocation{VesselID: v.ID(), BerthID: b.ID()}, nil
}
