package commands

import (
	"errors"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/pkg/guard"
)

var ErrCreateOperationCommandIsNotConstructed = errors.New(
	"CreateOperationCommand must be created via NewCreateOperationCommand constructor",
)

// CreateOperationCommand starts a loading, unloading or transfer of a
// container on one unit of an equipment type.
//
// Example:
//
//	cmd, err := NewCreateOperationCommand("crane-op-7", "unloading", containerID, "crane")
//	opID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrResourceOccupied) {
//	    // every crane is busy
//	}
type CreateOperationCommand struct {
	caller        kernel.Principal
	opType        operation.Type
	containerID   kernel.ID
	equipmentType string

	guard guard.ConstructorGuard
}

func NewCreateOperationCommand(
	caller string,
	opType string,
	containerID uint64,
	equipmentType string,
) (CreateOperationCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	t, typeErr := operation.ParseType(opType)
	id, idErr := kernel.NewID(containerID)
	var equipmentErr error
	if equipment.NormalizeType(equipmentType) == "" {
		equipmentErr = equipment.ErrTypeIsRequired
	}
	if err := errors.Join(callerErr, typeErr, idErr, equipmentErr); err != nil {
		return CreateOperationCommand{}, err
	}

	return CreateOperationCommand{
		caller:        principal,
		opType:        t,
		containerID:   id,
		equipmentType: equipment.NormalizeType(equipmentType),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOperationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperationCommandIsNotConstructed)
}

func (c CreateOperationCommand) Caller() kernel.Principal { return c.caller }

func (c CreateOperationCommand) Type() operation.Type { return c.opType }

func (c CreateOperationCommand) ContainerID() kernel.ID { return c.containerID }

func (c CreateOperationCommand) EquipmentType() string { return c.equipmentType }
