package commands

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
	"seaport/internal/pkg/errs"
)

// UpdateEquipmentInventoryCommandHandler creates the record of an equipment
// type on first use and overwrites its counts afterwards.
type UpdateEquipmentInventoryCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
}

func NewUpdateEquipmentInventoryCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
) UpdateEquipmentInventoryCommandHandler {
	return UpdateEquipmentInventoryCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
	}
}

func (h UpdateEquipmentInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateEquipmentInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "update equipment inventory", kernel.RolePortOperator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	equipmentRepo := uow.EquipmentRepository()
	inventory, err := equipmentRepo.Get(ctx, cmd.EquipmentType())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		inventory, err = equipment.NewInventory(cmd.EquipmentType(), cmd.Total(), cmd.Available(), cmd.Maintenance())
		if err != nil {
			return err
		}
		err = equipmentRepo.Add(ctx, inventory)
	case err != nil:
		return err
	default:
		if err = inventory.Update(cmd.Total(), cmd.Available(), cmd.Maintenance()); err != nil {
			return err
		}
		err = equipmentRepo.Update(ctx, inventory)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
