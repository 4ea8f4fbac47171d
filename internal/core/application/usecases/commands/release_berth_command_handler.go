package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"
)

// ReleaseBerthCommandHandler frees the berth of a departing vessel. The
// vessel owner or a port operator may release it.
type ReleaseBerthCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	allocator  services.BerthAllocator
}

func NewReleaseBerthCommandHandler(uowFactory UoWFactory, gate ports.AuthorizationGate) ReleaseBerthCommandHandler {
	return ReleaseBerthCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		allocator:  services.NewBerthAllocator(),
	}
}

// Handle fails with vessel.ErrNoBerthAssigned when the vessel holds no berth.
// The berth utilization counter is decremented and never goes below zero.
func (h ReleaseBerthCommandHandler) Handle(ctx context.Context, cmd ReleaseBerthCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	privileged, err := h.roles.holdsAny(ctx, cmd.Caller(), kernel.RolePortOperator)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = ownerOrRole(privileged, cmd.Caller(), v.Owner(), fmt.Sprintf("release vessel %s", v.ID())); err != nil {
		return err
	}
	if v.Berth() == nil {
		return fmt.Errorf("%w: vessel %s", vessel.ErrNoBerthAssigned, v.ID())
	}

	b, err := berthRepo.Get(ctx, *v.Berth())
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
	if err = uow.CounterRepository().Decrement(ctx, ports.BerthsInUse); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
