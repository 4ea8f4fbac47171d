package commands

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/ports"
)

// RegisterVesselCommandHandler registers vessels. Any identified caller may
// register a vessel and becomes its owner.
type RegisterVesselCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRegisterVesselCommandHandler(uowFactory UoWFactory, clock ports.Clock) RegisterVesselCommandHandler {
	return RegisterVesselCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle allocates the next vessel id and stores the vessel with a priority
// derived from the current tick.
func (h RegisterVesselCommandHandler) Handle(ctx context.Context, cmd RegisterVesselCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.CounterRepository().NextID(ctx, kernel.VesselClass)
	if err != nil {
		return 0, err
	}

	v, err := vessel.NewVessel(
		id,
		cmd.Dimensions(),
		cmd.CargoCapacity(),
		cmd.Class(),
		cmd.Caller(),
		cmd.RequestedArrival(),
		h.clock.Now(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.VesselRepository().Add(ctx, v); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
