package commands

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"
)

// CreateScheduleCommandHandler books berth windows.
//
// A vessel holds at most one active schedule, and active windows on the same
// berth never overlap. The vessel must fit the berth envelope; occupancy is
// not checked because the window lies in the future.
type CreateScheduleCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
	allocator  services.BerthAllocator
}

func NewCreateScheduleCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) CreateScheduleCommandHandler {
	return CreateScheduleCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
		allocator:  services.NewBerthAllocator(),
	}
}

func (h CreateScheduleCommandHandler) Handle(ctx context.Context, cmd CreateScheduleCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "create schedule", kernel.RolePortOperator); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VesselRepository().Get(ctx, cmd.VesselID())
	if err != nil {
		return 0, err
	}
	b, err := uow.BerthRepository().Get(ctx, cmd.BerthID())
	if err != nil {
		return 0, err
	}
	if err = b.CheckFits(v.Dimensions()); err != nil {
		return 0, err
	}

	scheduleRepo := uow.ScheduleRepository()
	vesselSchedules, err := scheduleRepo.GetActiveByVessel(ctx, v.ID())
	if err != nil {
		return 0, err
	}
	berthSchedules, err := scheduleRepo.GetActiveByBerth(ctx, b.ID())
	if err != nil {
		return 0, err
	}
	err = h.allocator.CheckScheduleConflict(v.ID(), cmd.Arrival(), cmd.Departure(), vesselSchedules, berthSchedules)
	if err != nil {
		return 0, err
	}

	id, err := uow.CounterRepository().NextID(ctx, kernel.ScheduleClass)
	if err != nil {
		return 0, err
	}
	s, err := schedule.NewSchedule(id, v.ID(), b.ID(), cmd.Arrival(), cmd.Departure(), v.Priority(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = scheduleRepo.Add(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
