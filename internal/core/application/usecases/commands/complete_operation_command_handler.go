package commands

import (
	"context"

	"seaport/internal/core/ports"
)

// CompleteOperationCommandHandler finishes an operation, scores it against
// the standard time of its type, returns the equipment unit and moves the
// container to its post-operation status. Rows are locked operation first,
// then container, then equipment; CreateOperation follows the same order.
type CompleteOperationCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCompleteOperationCommandHandler(uowFactory UoWFactory, clock ports.Clock) CompleteOperationCommandHandler {
	return CompleteOperationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the efficiency score of the completed operation.
func (h CompleteOperationCommandHandler) Handle(ctx context.Context, cmd CompleteOperationCommand) (float64, error) {
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

	operationRepo := uow.OperationRepository()
	equipmentRepo := uow.EquipmentRepository()
	containerRepo := uow.ContainerRepository()

	op, err := operationRepo.Get(ctx, cmd.OperationID())
	if err != nil {
		return 0, err
	}
	if err = op.Complete(cmd.Caller(), h.clock.Now()); err != nil {
		return 0, err
	}

	c, err := containerRepo.Get(ctx, op.ContainerID())
	if err != nil {
		return 0, err
	}
	if err = c.FinishHandling(op.Type().ContainerStatusOnCompletion()); err != nil {
		return 0, err
	}

	inventory, err := equipmentRepo.Get(ctx, op.EquipmentType())
	if err != nil {
		return 0, err
	}
	if err = inventory.Release(op.Unit()); err != nil {
		return 0, err
	}

	if err = operationRepo.Update(ctx, op); err != nil {
		return 0, err
	}
	if err = equipmentRepo.Update(ctx, inventory); err != nil {
		return 0, err
	}
	if err = containerRepo.Update(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return op.Efficiency(), nil
}
