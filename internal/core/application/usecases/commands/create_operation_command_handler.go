package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/core/ports"
)

// CreateOperationCommandHandler reserves an equipment unit for a container
// operation. Port operators, authorized handlers and the container owner may
// start one. The reserved unit stays held until the operation completes, so
// a unit never runs two operations at once.
type CreateOperationCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
}

func NewCreateOperationCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) CreateOperationCommandHandler {
	return CreateOperationCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
	}
}

// Handle fails with equipment.ErrNoUnitAvailable when every unit of the type
// is reserved or the available count is zero.
func (h CreateOperationCommandHandler) Handle(ctx context.Context, cmd CreateOperationCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	privileged, err := h.roles.holdsAny(ctx, cmd.Caller(), kernel.RolePortOperator, kernel.RoleAuthorizedHandler)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	equipmentRepo := uow.EquipmentRepository()

	c, err := containerRepo.Get(ctx, cmd.ContainerID())
	if err != nil {
		return 0, err
	}
	action := fmt.Sprintf("start %s of container %s", cmd.Type(), c.ID())
	if err = ownerOrRole(privileged, cmd.Caller(), c.Owner(), action); err != nil {
		return 0, err
	}

	if err = c.BeginHandling(cmd.Type().ContainerStatusOnStart()); err != nil {
		return 0, err
	}

	inventory, err := equipmentRepo.Get(ctx, cmd.EquipmentType())
	if err != nil {
		return 0, err
	}
	unit, err := inventory.Reserve()
	if err != nil {
		return 0, err
	}

	id, err := uow.CounterRepository().NextID(ctx, kernel.OperationClass)
	if err != nil {
		return 0, err
	}
	op, err := operation.NewOperation(
		id,
		cmd.Type(),
		c.ID(),
		c.VesselID(),
		inventory.Type(),
		unit,
		cmd.Caller(),
		h.clock.Now(),
	)
	if err != nil {
		return 0, err
	}

	if err = equipmentRepo.Update(ctx, inventory); err != nil {
		return 0, err
	}
	if err = containerRepo.Update(ctx, c); err != nil {
		return 0, err
	}
	if err = uow.OperationRepository().Add(ctx, op); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
