package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
)

// ScheduleDepartureCommandHandler moves a docked vessel to scheduled-departure.
// The departure must lie strictly after the current tick.
type ScheduleDepartureCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
}

func NewScheduleDepartureCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) ScheduleDepartureCommandHandler {
	return ScheduleDepartureCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
	}
}

func (h ScheduleDepartureCommandHandler) Handle(ctx context.Context, cmd ScheduleDepartureCommand) error {
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
	v, err := vesselRepo.Get(ctx, cmd.VesselID())
	if err != nil {
		return err
	}
	action := fmt.Sprintf("schedule departure of vessel %s", v.ID())
	if err = ownerOrRole(privileged, cmd.Caller(), v.Owner(), action); err != nil {
		return err
	}

	if err = v.ScheduleDeparture(cmd.Departure(), h.clock.Now()); err != nil {
		return err
	}

	if err = vesselRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
