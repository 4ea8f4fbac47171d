package commands

import (
	"context"

	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
)

// RegisterBerthCommandHandler creates operational, unoccupied berths.
type RegisterBerthCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
}

func NewRegisterBerthCommandHandler(uowFactory UoWFactory, gate ports.AuthorizationGate) RegisterBerthCommandHandler {
	return RegisterBerthCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
	}
}

func (h RegisterBerthCommandHandler) Handle(ctx context.Context, cmd RegisterBerthCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "register berth", kernel.RolePortOperator); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.CounterRepository().NextID(ctx, kernel.BerthClass)
	if err != nil {
		return 0, err
	}

	b, err := berth.NewBerth(
		id,
		cmd.Name(),
		cmd.Envelope(),
		cmd.SupportedClass(),
		cmd.CraneCapacity(),
		cmd.HourlyRate(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.BerthRepository().Add(ctx, b); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
