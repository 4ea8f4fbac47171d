package commands

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
)

// SetBerthOperationalCommandHandler toggles the operational flag of a berth.
// An occupied berth cannot be taken out of service.
type SetBerthOperationalCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
}

func NewSetBerthOperationalCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
) SetBerthOperationalCommandHandler {
	return SetBerthOperationalCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
	}
}

func (h SetBerthOperationalCommandHandler) Handle(ctx context.Context, cmd SetBerthOperationalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "change berth service state", kernel.RolePortOperator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	berthRepo := uow.BerthRepository()
	b, err := berthRepo.Get(ctx, cmd.BerthID())
	if err != nil {
		return err
	}

	if err = b.SetOperational(cmd.Operational()); err != nil {
		return err
	}

	if err = berthRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
