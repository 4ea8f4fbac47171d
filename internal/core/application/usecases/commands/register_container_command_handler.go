package commands

import (
	"context"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"
)

// RegisterContainerCommandHandler registers containers and derives their
// handling priority. A referenced vessel must exist.
type RegisterContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewRegisterContainerCommandHandler(uowFactory UoWFactory) RegisterContainerCommandHandler {
	return RegisterContainerCommandHandler{uowFactory: uowFactory}
}

func (h RegisterContainerCommandHandler) Handle(ctx context.Context, cmd RegisterContainerCommand) (kernel.ID, error) {
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

	spec := cmd.Spec()
	if spec.VesselID != nil {
		if _, err := uow.VesselRepository().Get(ctx, *spec.VesselID); err != nil {
			return 0, err
		}
	}

	id, err := uow.CounterRepository().NextID(ctx, kernel.ContainerClass)
	if err != nil {
		return 0, err
	}

	c, err := cargo.NewContainer(id, cmd.Caller(), spec)
	if err != nil {
		return 0, err
	}

	if err = uow.ContainerRepository().Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
