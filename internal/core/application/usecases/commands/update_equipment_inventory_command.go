package commands

import (
	"errors"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var ErrUpdateEquipmentInventoryCommandIsNotConstructed = errors.New(
	"UpdateEquipmentInventoryCommand must be created via NewUpdateEquipmentInventoryCommand constructor",
)

// UpdateEquipmentInventoryCommand sets the unit counts of an equipment type.
type UpdateEquipmentInventoryCommand struct {
	caller        kernel.Principal
	equipmentType string
	total         int
	available     int
	maintenance   int

	guard guard.ConstructorGuard
}

// NewUpdateEquipmentInventoryCommand checks 0 <= available <= total up front.
// Whether the counts leave room for reserved units is decided by the inventory.
func NewUpdateEquipmentInventoryCommand(
	caller string,
	equipmentType string,
	total, available, maintenance int,
) (UpdateEquipmentInventoryCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)

	var typeErr, availableErr error
	if equipment.NormalizeType(equipmentType) == "" {
		typeErr = equipment.ErrTypeIsRequired
	}
	if available < 0 || available > total {
		availableErr = errs.NewValueIsOutOfRangeError("available", available, 0, total)
	}

	if err := errors.Join(callerErr, typeErr, availableErr); err != nil {
		return UpdateEquipmentInventoryCommand{}, err
	}

	return UpdateEquipmentInventoryCommand{
		caller:        principal,
		equipmentType: equipment.NormalizeType(equipmentType),
		total:         total,
		available:     available,
		maintenance:   maintenance,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEquipmentInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEquipmentInventoryCommandIsNotConstructed)
}

func (c UpdateEquipmentInventoryCommand) Caller() kernel.Principal { return c.caller }

func (c UpdateEquipmentInventoryCommand) EquipmentType() string { return c.equipmentType }

func (c UpdateEquipmentInventoryCommand) Total() int { return c.total }

func (c UpdateEquipmentInventoryCommand) Available() int { return c.available }

func (c UpdateEquipmentInventoryCommand) Maintenance() int { return c.maintenance }
